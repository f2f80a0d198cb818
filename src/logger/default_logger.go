package logger

import "sync"

var (
	defaultLogger *Logger
	once          sync.Once
)

func Default() *Logger {
	once.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}
