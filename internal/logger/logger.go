package logger

import (
	"bytes"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Field keys consumed by ConsoleFormatter rather than printed.
const (
	successKey = "success"
	requestKey = "http_request"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&ConsoleFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the level ("debug", "info", "warn", "error") and the format
// ("console" or "json").
func Configure(level, format string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
		return
	}
	log.SetFormatter(&ConsoleFormatter{})
}

// SetOutput redirects every log line to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// StdLogger adapts the logger for APIs that want a *log.Logger, such as
// http.Server.ErrorLog. Every line is logged at error level.
func StdLogger() *stdlog.Logger {
	return stdlog.New(log.WriterLevel(logrus.ErrorLevel), "", 0)
}

// WithFields returns an entry carrying structured context.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

func Info(message string, args ...interface{}) {
	log.Infof(message, args...)
}

// Success logs at info level, rendered in green on the console.
func Success(message string, args ...interface{}) {
	log.WithField(successKey, true).Infof(message, args...)
}

func Warning(message string, args ...interface{}) {
	log.Warnf(message, args...)
}

func Error(message string, args ...interface{}) {
	log.Errorf(message, args...)
}

func Debug(message string, args ...interface{}) {
	log.Debugf(message, args...)
}

// Request logs a completed HTTP request.
func Request(method, path string, statusCode int, duration time.Duration, fields logrus.Fields) {
	entry := log.WithFields(fields).WithFields(logrus.Fields{
		requestKey: true,
		"method":   method,
		"path":     path,
		"status":   statusCode,
		"duration": FormatDuration(duration),
	})
	switch {
	case statusCode >= 500:
		entry.Error("request failed")
	case statusCode >= 400:
		entry.Warn("request rejected")
	default:
		entry.Info("request handled")
	}
}

// FormatDuration renders d as µs, ms or s depending on its magnitude.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// ConsoleFormatter prints "[15:04:05] ✓ message key=value" lines with
// level-dependent colours.
type ConsoleFormatter struct{}

var (
	grey   = color.New(color.FgHiBlack)
	blue   = color.New(color.FgBlue)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	purple = color.New(color.FgMagenta)
)

func (f *ConsoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(grey.Sprintf("[%s]", e.Time.Format("15:04:05")))
	b.WriteByte(' ')

	if _, ok := e.Data[requestKey]; ok {
		f.writeRequest(&b, e)
	} else {
		b.WriteString(levelColor(e).Sprint(levelSymbol(e) + e.Message))
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		switch k {
		case successKey, requestKey, "method", "path", "status", "duration":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(grey.Sprintf("%s=%v", k, e.Data[k]))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func (f *ConsoleFormatter) writeRequest(b *bytes.Buffer, e *logrus.Entry) {
	status, _ := e.Data["status"].(int)
	statusColor := green
	switch {
	case status >= 500:
		statusColor = red
	case status >= 400:
		statusColor = yellow
	case status >= 300:
		statusColor = cyan
	}

	fmt.Fprintf(b, "%s %s %s %s",
		purple.Sprintf("%-6v", e.Data["method"]),
		fmt.Sprintf("%-40v", e.Data["path"]),
		statusColor.Sprintf("[%d]", status),
		grey.Sprintf("(%v)", e.Data["duration"]),
	)
}

func levelColor(e *logrus.Entry) *color.Color {
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return red
	case logrus.WarnLevel:
		return yellow
	case logrus.DebugLevel, logrus.TraceLevel:
		return grey
	}
	if _, ok := e.Data[successKey]; ok {
		return green
	}
	return blue
}

func levelSymbol(e *logrus.Entry) string {
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "✗ "
	case logrus.WarnLevel:
		return "⚠ "
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG: "
	}
	if _, ok := e.Data[successKey]; ok {
		return "✓ "
	}
	return ""
}
