package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the optional log file.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Verbose and Quiet take precedence.
	Level   string
	Verbose bool
	Quiet   bool

	// File, when set, also writes JSON logs to a rotating file.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Console overrides the stderr destination. It is always JSON.
	Console io.Writer
}

var zerologConfigOnce sync.Once //nolint:gochecknoglobals // one-time configuration

func configureZerologGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	})
}

// New builds a logger from opts. The returned closer releases the log file and
// is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	configureZerologGlobals()

	level, err := selectLevel(opts)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	console := opts.Console
	if console == nil {
		console = selectOutput()
	}

	var (
		writer io.Writer = console
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		fw, err := newFileWriter(opts)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		writer = zerolog.MultiLevelWriter(console, fw)
		closer = fw
	}

	logger := zerolog.New(writer).
		Level(level).
		Hook(NewSensitiveDataHook()).
		With().Timestamp().Logger()
	return logger, closer, nil
}

// selectLevel resolves the effective level.
func selectLevel(opts Options) (zerolog.Level, error) {
	switch {
	case opts.Verbose:
		return zerolog.DebugLevel, nil
	case opts.Quiet:
		return zerolog.WarnLevel, nil
	case strings.TrimSpace(opts.Level) == "":
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	return lvl, nil
}

// selectOutput picks a console writer on a TTY and JSON on stderr otherwise.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

// filteringWriteCloser redacts before handing bytes to the rotating file.
type filteringWriteCloser struct {
	filter *FilteringWriter
	closer io.Closer
}

func (f *filteringWriteCloser) Write(p []byte) (int, error) { return f.filter.Write(p) }
func (f *filteringWriteCloser) Close() error                { return f.closer.Close() }

func newFileWriter(opts Options) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   opts.Compress,
	}
	return &filteringWriteCloser{filter: NewFilteringWriter(lj), closer: lj}, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
