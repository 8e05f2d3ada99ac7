package testutil

import (
	"bytes"
	"log/slog"
	"strings"
)

// NewBufferLogger returns an info-level text logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	return NewLevelBufferLogger(slog.LevelInfo)
}

// NewLevelBufferLogger is NewBufferLogger at an explicit level, e.g. to capture list debug logs.
func NewLevelBufferLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return logger, &buf
}

// LogLines returns the buffered log lines whose msg is exactly msg.
func LogLines(buf *bytes.Buffer, msg string) []string {
	var lines []string
	needle := "msg=" + quoteIfNeeded(msg)
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, needle+" ") || strings.HasSuffix(line, needle) {
			lines = append(lines, line)
		}
	}
	return lines
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " =\"") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
