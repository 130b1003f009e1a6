package util

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// AccessEventType classifies a logged request event.
type AccessEventType string

const (
	EventEndpointCall      AccessEventType = "ENDPOINT_CALL"
	EventListingSubmitted  AccessEventType = "LISTING_SUBMITTED"
	EventRateLimitExceeded AccessEventType = "RATE_LIMIT_EXCEEDED"
	EventRateLimitError    AccessEventType = "RATE_LIMIT_ERROR"
)

// AccessEvent is a single request-level event to be logged.
type AccessEvent struct {
	EventType AccessEventType
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var accessLogger *log.Logger

func init() {
	accessLogger = log.New(os.Stdout, "[ACCESS] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAccessEvent writes one key=value line for event. Detail keys are emitted in sorted order.
func LogAccessEvent(event AccessEvent) {
	msg := fmt.Sprintf("Event=%s IP=%s UserAgent=%q Message=%q",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)

	keys := make([]string, 0, len(event.Details))
	for k := range event.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		msg = fmt.Sprintf("%s %s=%s", msg, sanitizeLogValue(k), sanitizeLogValue(fmt.Sprint(event.Details[k])))
	}

	accessLogger.Println(msg)
}

// LogListingSubmitted logs a newly created listing.
func LogListingSubmitted(id uint, city, ip string) {
	LogAccessEvent(AccessEvent{
		EventType: EventListingSubmitted,
		IP:        ip,
		Message:   fmt.Sprintf("Chiropractor %d submitted", id),
		Details:   map[string]interface{}{"id": id, "city": city},
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogAccessEvent(AccessEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// GetAccessLoggerForTest returns the current access logger for testing purposes
func GetAccessLoggerForTest() *log.Logger {
	return accessLogger
}

// SetAccessLoggerForTest sets a custom logger for testing purposes
func SetAccessLoggerForTest(logger *log.Logger) {
	accessLogger = logger
}
