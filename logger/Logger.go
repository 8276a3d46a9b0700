package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}

type Logger struct {
	entry *logrus.Entry
}

type loggerProperties struct {
	filename   string
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
	level      string
	console    bool
}

func readLoggerProperties(dir string) (loggerProperties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		return loggerProperties{}, fmt.Errorf("read logger properties: %w", err)
	}

	return loggerProperties{
		filename:   cast.ToString(v.Get("logFilename")),
		maxSize:    cast.ToInt(v.Get("maxSize")),
		maxBackups: cast.ToInt(v.Get("maxBackups")),
		maxAge:     cast.ToInt(v.Get("maxAge")),
		compress:   cast.ToBool(v.Get("compress")),
		level:      cast.ToString(v.Get("level")),
		console:    cast.ToBool(v.Get("console")),
	}, nil
}

// Init points the logger at the rotating file described by <dir>/logger.properties.
func (l *Logger) Init(dir string) error {
	props, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	var out io.Writer = &lumberjack.Logger{
		Filename:   props.filename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}
	// 終端機畫面由 tcell 接管，預設不輸出到 console
	if props.console {
		out = io.MultiWriter(out, os.Stderr)
	}

	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(out)
	base.SetLevel(parseLevel(props.level))

	l.entry = logrus.NewEntry(base)
	return nil
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// WithSession tags every following line with the given session id.
func (l *Logger) WithSession(id string) {
	l.entry = l.entry.WithField("session", id)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
