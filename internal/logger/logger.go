package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options はロガーの設定
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	File   string // 空の場合は標準出力のみ
}

// New はlogrusロガーを作成する
// File が指定された場合はローテーション付きファイルにも出力する
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrap(err, "invalid log level")
		}
		level = parsed
	}
	log.SetLevel(level)

	if opts.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create log directory")
		}
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	log.SetOutput(out)

	return log, nil
}
