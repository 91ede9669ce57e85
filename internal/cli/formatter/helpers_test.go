package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"in days", now.Add(5 * 24 * time.Hour), "In 5d"},
		{"in weeks", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"in months", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"days ago", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"weeks ago", now.Add(-21 * 24 * time.Hour), "3w ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.t, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly te", Truncate("exactly te", 10))
	assert.Equal(t, "overlong…", Truncate("overlong text", 9))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "STATUS"},
		[][]string{
			{"Website Relaunch", "active"},
			{"App", "paused"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[2], "Website Relaunch")
	assert.Contains(t, lines[3], "App")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
