package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gomlab/gomlab/pkg/errors"
)

// InitZerologWarnings routes toolkit warnings through a zerolog logger. When
// a warning type implements zerolog.LogObjectMarshaler its structured fields
// are embedded in the event; otherwise the message alone is logged.
func InitZerologWarnings(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.EmbedObject(marshaler)
		}
		ev.Msg(warning.Error())
	})
}
