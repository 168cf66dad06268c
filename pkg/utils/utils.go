package utils

import "time"

// NowISO returns the current instant as an ISO-8601 (RFC 3339) UTC string,
// the timestamp form stored on rules and violations.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
