package main

import (
	"log/slog"

	"github.com/dohdns/dohdns"
)

// slogLogger adapts a *slog.Logger to the dohdns.Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, fields ...dohdns.Field) {
	s.l.Debug(msg, attrs(fields)...)
}

func (s slogLogger) Info(msg string, fields ...dohdns.Field) {
	s.l.Info(msg, attrs(fields)...)
}

func (s slogLogger) Error(msg string, err error, fields ...dohdns.Field) {
	args := attrs(fields)
	if err != nil {
		args = append(args, "err", err)
	}
	s.l.Error(msg, args...)
}

func attrs(fields []dohdns.Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}
