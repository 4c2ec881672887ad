package log

import (
	"io"
	"os"

	console "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/corpix/rle/errors"
)

type (
	Level   = zerolog.Level
	Logger  = zerolog.Logger
	Event   = zerolog.Event
	Context = zerolog.Context

	Option func(*Logger)
)

const (
	LevelTrace = zerolog.TraceLevel
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
	LevelPanic = zerolog.PanicLevel
	LevelFatal = zerolog.FatalLevel

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

var log = zerolog.Nop()

func Debug() *Event                                { return log.Debug() }
func Err(err error) *Event                         { return log.Err(err) }
func Error() *Event                                { return log.Error() }
func Fatal() *Event                                { return log.Fatal() }
func Info() *Event                                 { return log.Info() }
func Log() *Event                                  { return log.Log() }
func Panic() *Event                                { return log.Panic() }
func Print(v ...interface{})                       { log.Print(v...) }
func Printf(format string, v ...interface{})       { log.Printf(format, v...) }
func Trace() *Event                                { return log.Trace() }
func UpdateContext(update func(c Context) Context) { log.UpdateContext(update) }
func Warn() *Event                                 { return log.Warn() }
func WithLevel(level Level) *Event                 { return log.WithLevel(level) }
func With() Context                                { return log.With() }

//

type Config struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

func (c *Config) Default() {
	if c.Level == "" {
		c.Level = LevelInfo.String()
	}
	if c.Output == "" {
		c.Output = OutputStderr
	}
}

func (c *Config) Validate() error {
	_, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid logging level %q", c.Level)
	}
	switch c.Output {
	case OutputStdout, OutputStderr:
		return nil
	default:
		return errors.Newf(
			"unsupported logging output %q, expected %q or %q",
			c.Output, OutputStdout, OutputStderr,
		)
	}
}

//

// WithWriter replaces the output selected by the configuration.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		*l = l.Output(w)
	}
}

func New(c *Config, options ...Option) (Logger, error) {
	var (
		output = os.Stderr

		log      Logger
		logLevel Level
		err      error
		w        io.Writer
	)

	if c.Output == OutputStdout {
		output = os.Stdout
	}
	if console.IsTerminal(output.Fd()) {
		w = zerolog.ConsoleWriter{Out: output}
	} else {
		w = output
	}

	level := c.Level
	if level == "" {
		level = LevelInfo.String()
	}
	logLevel, err = zerolog.ParseLevel(level)
	if err != nil {
		return log, errors.Wrapf(err, "failed to parse logging level %q", level)
	}

	log = zerolog.New(w).With().
		Timestamp().Logger().
		Level(logLevel)

	for _, option := range options {
		option(&log)
	}

	return log, nil
}

func Init(c *Config, options ...Option) error {
	l, err := New(c, options...)
	if err != nil {
		return err
	}

	log = l

	return nil
}
