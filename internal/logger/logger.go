// Package logger builds the structured logger used by the tabula command.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

// New returns a JSON logger writing to w together with the zap logger
// behind it, which callers pass to [Sync] before exiting. verbosity is the
// highest logr V-level that is written; 0 keeps only Info and errors.
func New(w io.Writer, verbosity int) (logr.Logger, *zap.Logger) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	// zapr maps V(n) to zap level -n.
	level := zapcore.Level(-max(verbosity, 0))

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
	return zapr.NewLogger(zl), zl
}

// Sync flushes buffered entries. Errors from syncing a terminal or pipe
// are ignored.
func Sync(zl *zap.Logger) {
	if zl == nil {
		return
	}
	if err := zl.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs.
// Windows consoles report an invalid handle that does not compare equal
// to syscall.EINVAL, so the message is matched as well.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
