package main

import (
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/easing"
)

var logger = zap.NewNop()

func getLogger() *zap.Logger {
	return logger
}

// setLogger enables debug logging to w, for both the command and the easing
// package.
func setLogger(w io.Writer) {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.DebugLevel)
	logger = zap.New(core, zap.Development())

	easing.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func resetLogger() {
	logger = zap.NewNop()
	easing.SetLogger(nil)
}

func flushLogger() {
	_ = logger.Sync()
}
