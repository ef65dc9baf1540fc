package autouser

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger mirrors the original module's mlog/vdebug split: every message
// is written to an optional per-deployment debug file (opened lazily,
// line-buffered by always reopening in append mode), while messages at
// warning level or above also go to the process's default logrus
// output so an operator without access to the debug file still sees
// real problems. Debugf is a no-op unless a debug file was configured —
// resolving the original's quirk of unconditionally formatting and
// emitting info-level detail before checking whether anyone asked for
// it (spec's open question on config_dump's logging order).
type Logger struct {
	mu        sync.Mutex
	debugPath string
	entry     *logrus.Entry
}

// NewLogger returns a Logger with no debug sink configured; Debugf
// calls on it are no-ops until WithDebugFile is called.
func NewLogger() *Logger {
	return &Logger{entry: logrus.StandardLogger().WithField("component", "nss-autouser")}
}

// WithDebugFile returns a copy of l that additionally appends every
// message, including Debugf detail, to path.
func (l *Logger) WithDebugFile(path string) *Logger {
	return &Logger{debugPath: path, entry: l.entry}
}

// WithField returns a copy of l that tags every subsequent message with
// key=value, e.g. a per-request correlation id.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{debugPath: l.debugPath, entry: l.entry.WithField(key, value)}
}

func (l *Logger) writeDebugFile(line string) {
	if l.debugPath == "" {
		return
	}

	keys := make([]string, 0, len(l.entry.Data))
	for k := range l.entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line += fmt.Sprintf(" %s=%v", k, l.entry.Data[k])
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.debugPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString(line + "\n")
}

// Debugf records operator-requested detail. It is silently dropped if
// no debug file has been configured.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debugPath == "" {
		return
	}
	l.writeDebugFile(fmt.Sprintf(format, args...))
}

// Infof records informational detail to the debug file only, same
// policy as Debugf — neither is noisy enough to warrant syslog/stderr
// by default.
func (l *Logger) Infof(format string, args ...any) {
	if l.debugPath == "" {
		return
	}
	l.writeDebugFile(fmt.Sprintf(format, args...))
}

// Warnf always surfaces: to the debug file if configured, and always to
// the process's logrus output.
func (l *Logger) Warnf(format string, args ...any) {
	l.writeDebugFile(fmt.Sprintf(format, args...))
	l.entry.Warnf(format, args...)
}

// Errorf always surfaces, same policy as Warnf.
func (l *Logger) Errorf(format string, args ...any) {
	l.writeDebugFile(fmt.Sprintf(format, args...))
	l.entry.Errorf(format, args...)
}
