// Package log emits structured JSON application events. App, audit and
// security events share one shape so log pipelines can key on "action".
package log

import (
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	logger = newLogger(false, "")
)

// Init replaces the package logger. Call once from main before serving.
func Init(development bool, logFile string) {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	logger = newLogger(development, logFile)
}

func newLogger(development bool, logFile string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.MessageKey = "action"

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if logFile != "" {
		if f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			sinks = append(sinks, zapcore.AddSync(f))
		}
	}

	level := zapcore.InfoLevel
	if development {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		level,
	)
	return zap.New(core)
}

func requestFields(c *fiber.Ctx, kind string, fields map[string]any) []zap.Field {
	out := []zap.Field{zap.String("kind", kind)}
	if c != nil {
		out = append(out,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			out = append(out, zap.String("req_id", rid))
		}
		if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
			out = append(out, zap.String("user_id", uid))
		}
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	logger.Info(action, requestFields(c, "app", fields)...)
}

// Audit records a state-changing operation performed by an operator.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	logger.Info(action, requestFields(c, "audit", fields)...)
}

// Security records denied access and other suspicious activity.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	logger.Warn(action, requestFields(c, "security", fields)...)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	fs := requestFields(c, "app", fields)
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	logger.Error(action, fs...)
}
