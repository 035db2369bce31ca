package utils

import "time"

// FormatLocal returns the provided time formatted in the local time zone.
func FormatLocal(t time.Time) string {
	return t.In(time.Local).Format(time.RFC1123)
}
