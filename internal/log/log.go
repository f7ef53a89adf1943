package log

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base *zap.Logger

func init() {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stdout), zap.InfoLevel)
	base = zap.New(core)
}

// SetOutput replaces the log sink; used at startup when a log file is
// configured, and by tests to capture output.
func SetOutput(ws zapcore.WriteSyncer) {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	base = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(ws), zap.InfoLevel))
}

func fieldsFor(c *fiber.Ctx, action string, err error, extra map[string]any) []zap.Field {
	fs := []zap.Field{zap.String("action", action)}
	if c != nil {
		fs = append(fs,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			fs = append(fs, zap.String("req_id", rid))
		}
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	if len(extra) > 0 {
		fs = append(fs, zap.Any("fields", extra))
	}
	return fs
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, fieldsFor(c, action, nil, fields)...)
}

// Audit records a state-changing action for after-the-fact review.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, append(fieldsFor(c, action, nil, fields), zap.String("level_tag", "audit"))...)
}

// Security records denied access and validation rejections.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	base.Warn(action, fieldsFor(c, action, nil, fields)...)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	base.Error(action, fieldsFor(c, action, err, fields)...)
}
