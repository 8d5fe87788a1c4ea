package logging

import (
	"encoding/json"
	"log"
	"os"
	"sync/atomic"
	"time"
)

type Fields map[string]interface{}

var debugEnabled atomic.Bool

// SetDebug toggles debug-level output. The server host enables it from its
// --verbose flag; it is off by default.
func SetDebug(on bool) { debugEnabled.Store(on) }

func output(level, msg string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	b, err := json.Marshal(fields)
	if err != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Debug logs engine trace output and other chatty diagnostics. Dropped
// unless SetDebug(true) was called.
func Debug(msg string, fields Fields) {
	if !debugEnabled.Load() {
		return
	}
	output("debug", msg, fields)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output("info", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	output("error", msg, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	output("fatal", msg, fields)
	os.Exit(1)
}
