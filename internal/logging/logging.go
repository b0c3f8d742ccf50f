package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const DefaultLevel = "info"

// New builds the diagnostic logger. Diagnostics never share a stream with
// protocol output, so w is normally stderr.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	var lvl, err = zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	var console = zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	var f, ok = w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
