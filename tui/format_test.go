package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 MB", FormatBytes(1536*1024))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "-", FormatTime(time.Time{}))

	ts := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10 09:30:00", FormatTime(ts))
	assert.Equal(t, "2026-03-10", FormatDate(ts))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}

func TestFormatShortID(t *testing.T) {
	assert.Equal(t, "abc", FormatShortID("abc"))
	assert.Equal(t, "12345678", FormatShortID("123456789abcdef"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "long st...", TruncateString("long string here", 10))
	assert.Equal(t, "lo", TruncateString("long", 2))
}
