package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger простой уровневый логгер поверх стандартного log.Logger
// Пишет в файл или stdout, формат сообщений printf-style
type Logger struct {
	level Level
	out   *os.File
	lg    *log.Logger
}

// New создает логгер
// file - путь к файлу логов, пустая строка или "stdout" - вывод в stdout
// level - debug | info | warn | error
func New(file, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	out := os.Stdout
	if file != "" && file != "stdout" {
		out, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %q: %w", file, err)
		}
	}

	return &Logger{
		level: lvl,
		out:   out,
		lg:    log.New(out, "", log.LstdFlags|log.Lmicroseconds),
	}, nil
}

func parseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown log level %q", level)
	}
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.printf(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.printf(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.printf(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.printf(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение уровня FATAL и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.printf(LevelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов (no-op для stdout)
func (l *Logger) Close() {
	if l.out != nil && l.out != os.Stdout {
		_ = l.out.Close()
	}
}

func (l *Logger) printf(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.lg.Printf("["+tag+"] "+format, v...)
}
