package vm

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the engine's debugging aid; everything is off by default so the
// hot path pays nothing beyond two bool checks
type logger struct {
	zerolog.Logger
	registrations bool
	dispatch      bool
}

func newLogger(registrations, dispatch bool) logger {
	return logger{
		Logger:        zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		registrations: registrations,
		dispatch:      dispatch,
	}
}

func (lg *logger) registeredf(format string, v ...any) {
	if lg.registrations {
		lg.Debug().Msgf(format, v...)
	}
}

func (lg *logger) dispatchf(format string, v ...any) {
	if lg.dispatch {
		lg.Debug().Msgf(format, v...)
	}
}
