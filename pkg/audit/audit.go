package audit

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Structured data IDs (RFC 5424). 32473 is the enterprise number
// reserved for documentation use.
const (
	SDIDAuth    = "auth@32473"
	SDIDSubject = "subject@32473"
	SDIDAction  = "action@32473"
	SDIDClient  = "client@32473"
)

// Syslog facilities carried by audit events. Authentication events go to
// LOG_AUTHPRIV, application lifecycle events to LOG_AUTH.
const (
	FacilityAuth     = 4
	FacilityAuthPriv = 10
)

// Severity is an event's syslog severity. Only the two levels events
// emit are named; values are the RFC 5424 codes.
type Severity int

const (
	SeverityWarning Severity = 4
	SeverityInfo    Severity = 6
)

// Event is one auditable occurrence, rendered as a syslog line and
// optionally persisted.
type Event interface {
	MessageID() string
	Message() string
	Severity() Severity
	Facility() int
	StructuredData() map[string]map[string]string
}

// Logger writes audit events as RFC 5424 syslog lines:
//
//	<PRI>VERSION TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG
type Logger struct {
	writer   io.Writer
	hostname string
	appName  string
	pid      int
}

// NewLogger creates an audit logger writing to stdout.
func NewLogger() *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		writer:   os.Stdout,
		hostname: hostname,
		appName:  "jobportal",
		pid:      os.Getpid(),
	}
}

// SetWriter redirects the logger's output.
func (l *Logger) SetWriter(w io.Writer) {
	l.writer = w
}

// Log renders one event and writes it out.
func (l *Logger) Log(event Event) {
	// PRI encodes facility and severity in one number.
	pri := event.Facility()*8 + int(event.Severity())

	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	sd := formatStructuredData(event.StructuredData())
	if sd == "" {
		sd = "-"
	}

	hostname := l.hostname
	if hostname == "" {
		hostname = "-"
	}

	logLine := fmt.Sprintf("<%d>1 %s %s %s %d %s %s %s\n",
		pri,
		timestamp,
		hostname,
		l.appName,
		l.pid,
		event.MessageID(),
		sd,
		event.Message(),
	)

	_, _ = l.writer.Write([]byte(logLine))
}

// formatStructuredData renders [sdid k="v" ...] elements per RFC 5424.
func formatStructuredData(sd map[string]map[string]string) string {
	if len(sd) == 0 {
		return ""
	}

	var b strings.Builder
	for sdid, params := range sd {
		b.WriteString("[")
		b.WriteString(sdid)
		for key, value := range params {
			b.WriteString(" ")
			b.WriteString(key)
			b.WriteString("=")
			b.WriteString(escapeSDValue(value))
		}
		b.WriteString("]")
	}
	return b.String()
}

// escapeSDValue quotes a structured data value, escaping backslash,
// double quote and closing bracket per RFC 5424 section 6.3.3.
func escapeSDValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "]", "\\]")
	return "\"" + value + "\""
}

// DefaultLogger receives every event passed to Log.
var DefaultLogger = NewLogger()

// DefaultStore persists events when AUDIT_DATABASE_URL is set, nil
// otherwise. Initialized lazily on the first Log call.
var DefaultStore *Store

var (
	auditEnabled     = true
	auditEnabledOnce sync.Once
	storeInitOnce    sync.Once
)

// IsEnabled reports whether audit logging is on. It defaults to on and
// is switched off with JOBPORTAL_AUDIT_ENABLED=false.
func IsEnabled() bool {
	auditEnabledOnce.Do(func() {
		if env := os.Getenv("JOBPORTAL_AUDIT_ENABLED"); env != "" {
			auditEnabled = env != "false" && env != "0" && env != "no"
		}
	})
	return auditEnabled
}

// SetEnabled overrides the environment switch. Call it before the first
// Log for consistent behavior.
func SetEnabled(enabled bool) {
	auditEnabled = enabled
}

// Log writes an event to the default logger and, when configured, the
// default store. Store failures are reported on stderr and never fail
// the request being audited.
func Log(event Event) {
	if !IsEnabled() {
		return
	}
	DefaultLogger.Log(event)

	storeInitOnce.Do(func() {
		var err error
		DefaultStore, err = NewStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "audit: failed to connect to audit database: %v\n", err)
		}
	})

	if DefaultStore != nil {
		if err := DefaultStore.Save(event); err != nil {
			fmt.Fprintf(os.Stderr, "audit: failed to save event: %v\n", err)
		}
	}
}
