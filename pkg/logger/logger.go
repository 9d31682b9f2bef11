package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Action    string         `json:"action"`
	Message   string         `json:"message"`
	Hostname  string         `json:"hostname"`
	Details   map[string]any `json:"details,omitempty"`
	Error     *ErrorEntry    `json:"error,omitempty"`
}

type ErrorEntry struct {
	Msg string `json:"msg"`
}

type Logger struct {
	service  string
	hostname string
}

func NewLogger(service string) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		service:  service,
		hostname: hostname,
	}
}

// Info logs an informational entry. Trailing arguments are key-value pairs
// collected into the details object.
func (l *Logger) Info(action, message string, kv ...any) {
	l.log("INFO", action, message, nil, kv)
}

func (l *Logger) Debug(action, message string, kv ...any) {
	l.log("DEBUG", action, message, nil, kv)
}

func (l *Logger) Warn(action, message string, kv ...any) {
	l.log("WARN", action, message, nil, kv)
}

func (l *Logger) Error(action, message string, err error, kv ...any) {
	var errorEntry *ErrorEntry
	if err != nil {
		errorEntry = &ErrorEntry{Msg: err.Error()}
	}
	l.log("ERROR", action, message, errorEntry, kv)
}

func (l *Logger) log(level, action, message string, errorEntry *ErrorEntry, kv []any) {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Service:   l.service,
		Action:    action,
		Message:   message,
		Hostname:  l.hostname,
		Details:   details(kv),
		Error:     errorEntry,
	}

	jsonData, _ := json.Marshal(entry)
	fmt.Println(string(jsonData))
}

func details(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	d := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		d[key] = kv[i+1]
	}
	return d
}
