package render

import (
	"strings"
	"time"
)

// maskToken keeps the head and tail of a token so it can be recognised
// without being copied off the page.
func maskToken(token string) string {
	const visible = 6
	if len(token) <= visible*2 {
		return strings.Repeat("*", len(token))
	}
	return token[:visible] + strings.Repeat("*", 8) + token[len(token)-visible:]
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
