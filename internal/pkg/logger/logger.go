package logger

import (
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
)

// CharmLogger adapts charmbracelet/log to ports.Logger.
type CharmLogger struct {
	l *log.Logger
}

// New creates a logger writing to stderr. Verbose enables debug output;
// otherwise only warnings and errors are printed.
func New(verbose bool) *CharmLogger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, verbose bool) *CharmLogger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return &CharmLogger{l: log.NewWithOptions(w, log.Options{
		Prefix:          "cmdx",
		ReportTimestamp: true,
		Level:           level,
	})}
}

// NewNop returns a logger that discards everything.
func NewNop() *CharmLogger {
	return &CharmLogger{l: log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})}
}

func (c *CharmLogger) Debug(msg string, fields map[string]interface{}) {
	c.l.Debug(msg, keyvals(fields)...)
}

func (c *CharmLogger) Info(msg string, fields map[string]interface{}) {
	c.l.Info(msg, keyvals(fields)...)
}

func (c *CharmLogger) Warn(msg string, fields map[string]interface{}) {
	c.l.Warn(msg, keyvals(fields)...)
}

func (c *CharmLogger) Error(msg string, err error, fields map[string]interface{}) {
	kv := keyvals(fields)
	if err != nil {
		kv = append([]interface{}{"err", err}, kv...)
	}
	c.l.Error(msg, kv...)
}

// keyvals flattens fields into sorted key/value pairs.
func keyvals(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, fields[k])
	}
	return out
}
