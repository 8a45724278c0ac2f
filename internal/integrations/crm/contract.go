package crm

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс сборщика метрик обращений к CRM
type MetricsRecorder interface {
	ObserveCRMRequest(method string, err error, duration time.Duration)
}
