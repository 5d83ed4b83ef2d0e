package metrics

// Classification scorers. Inputs are label indices (float64-encoded); macro
// averaging is used for the multi-class precision/recall/f1 variants so that
// every observed class contributes equally.

// Accuracy computes the fraction of exact matches.
func Accuracy(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("Accuracy", yTrue, yPred); err != nil {
		return 0, err
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// BalancedAccuracy computes the mean of per-class recalls, which corrects
// for class imbalance.
func BalancedAccuracy(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("BalancedAccuracy", yTrue, yPred); err != nil {
		return 0, err
	}

	support := make(map[float64]int)
	hits := make(map[float64]int)
	for i := range yTrue {
		support[yTrue[i]]++
		if yTrue[i] == yPred[i] {
			hits[yTrue[i]]++
		}
	}

	var sum float64
	for class, n := range support {
		sum += float64(hits[class]) / float64(n)
	}
	return sum / float64(len(support)), nil
}

// classCounts accumulates true-positive, predicted and actual counts per
// class for the macro-averaged scorers.
func classCounts(yTrue, yPred []float64) (classes []float64, tp, predicted, actual map[float64]int) {
	tp = make(map[float64]int)
	predicted = make(map[float64]int)
	actual = make(map[float64]int)
	seen := make(map[float64]bool)

	for i := range yTrue {
		actual[yTrue[i]]++
		predicted[yPred[i]]++
		if yTrue[i] == yPred[i] {
			tp[yTrue[i]]++
		}
		for _, v := range []float64{yTrue[i], yPred[i]} {
			if !seen[v] {
				seen[v] = true
				classes = append(classes, v)
			}
		}
	}
	return classes, tp, predicted, actual
}

// Precision computes macro-averaged precision. Classes never predicted
// contribute zero, matching the convention of treating an undefined ratio as
// its worst value.
func Precision(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("Precision", yTrue, yPred); err != nil {
		return 0, err
	}

	classes, tp, predicted, _ := classCounts(yTrue, yPred)
	var sum float64
	for _, c := range classes {
		if predicted[c] > 0 {
			sum += float64(tp[c]) / float64(predicted[c])
		}
	}
	return sum / float64(len(classes)), nil
}

// Recall computes macro-averaged recall.
func Recall(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("Recall", yTrue, yPred); err != nil {
		return 0, err
	}

	classes, tp, _, actual := classCounts(yTrue, yPred)
	var sum float64
	for _, c := range classes {
		if actual[c] > 0 {
			sum += float64(tp[c]) / float64(actual[c])
		}
	}
	return sum / float64(len(classes)), nil
}

// F1 computes the macro-averaged F1 score.
func F1(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("F1", yTrue, yPred); err != nil {
		return 0, err
	}

	classes, tp, predicted, actual := classCounts(yTrue, yPred)
	var sum float64
	for _, c := range classes {
		var p, r float64
		if predicted[c] > 0 {
			p = float64(tp[c]) / float64(predicted[c])
		}
		if actual[c] > 0 {
			r = float64(tp[c]) / float64(actual[c])
		}
		if p+r > 0 {
			sum += 2 * p * r / (p + r)
		}
	}
	return sum / float64(len(classes)), nil
}
