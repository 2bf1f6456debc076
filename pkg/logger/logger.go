package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOption 日志初始化参数
type LogOption struct {
	Format   string // "console" 或 "json"
	LogDir   string // 日志目录，为空时只输出到 stdout
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩轮转后的旧日志
}

const (
	logFileName   = "ixdecode.log"
	maxSizeMB     = 200
	maxBackups    = 10
	maxAgeDays    = 7
	callerSkipOne = 1
)

var sugared atomic.Pointer[zap.SugaredLogger]

func init() {
	l, _ := newLogger(LogOption{Format: "console", Level: "info"})
	sugared.Store(l)
}

// Init 按配置替换全局 logger，可重复调用
func Init(opt LogOption) error {
	l, err := newLogger(opt)
	if err != nil {
		return err
	}
	old := sugared.Swap(l)
	if old != nil {
		_ = old.Sync()
	}
	return nil
}

func newLogger(opt LogOption) (*zap.SugaredLogger, error) {
	level, err := parseLevel(opt.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(opt.Format) {
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", opt.Format)
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if opt.LogDir != "" {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir %s: %w", opt.LogDir, err)
		}
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, logFileName),
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   opt.Compress,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerSkipOne)).Sugar(), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return level, nil
}

func Debugf(format string, args ...interface{}) { sugared.Load().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { sugared.Load().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { sugared.Load().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { sugared.Load().Errorf(format, args...) }

// Sync 刷新缓冲，进程退出前调用
func Sync() {
	_ = sugared.Load().Sync()
}
