package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init sets up the process-wide logger. Development gets readable text at
// debug level; everything else gets JSON at info level.
func Init(environment string) {
	if environment == "development" {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func Debug(msg string, args ...any) {
	l().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	l().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	l().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	l().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	l().Error(msg, normalize(args)...)
	os.Exit(1)
}

func l() *slog.Logger {
	if log == nil {
		return slog.Default()
	}

	return log
}

// normalize accepts both key-value pairs and bare error values, so call
// sites can write Error("failed to x", err) without spelling the key.
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err.Error())
			continue
		}
		if i+1 < len(args) {
			out = append(out, args[i], args[i+1])
			i++
			continue
		}
		out = append(out, "detail", args[i])
	}

	return out
}
