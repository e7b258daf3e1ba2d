package local

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, time.July, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{name: "iso string", raw: `"2024-07-15T10:30:00.000Z"`, want: want, ok: true},
		{name: "iso string with offset", raw: `"2024-07-15T13:30:00+03:00"`, want: want, ok: true},
		{name: "epoch millis", raw: `1721039400000`, want: want, ok: true},
		{name: "epoch millis as string", raw: `"1721039400000"`, want: want, ok: true},
		{name: "structured", raw: `{"seconds": 1721039400, "nanoseconds": 0}`, want: want, ok: true},
		{name: "structured without seconds", raw: `{"nanoseconds": 5}`},
		{name: "garbage string", raw: `"yesterday"`},
		{name: "null", raw: `null`},
		{name: "empty", raw: ``},
		{name: "bool", raw: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTimestamp(json.RawMessage(tt.raw))

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, time.July, 15, 10, 30, 0, 123e6, time.UTC)

	assert.Equal(t, "2024-07-15T10:30:00.123Z", formatTimestamp(ts))

	got, ok := parseTimestamp(json.RawMessage(`"` + formatTimestamp(ts) + `"`))
	assert.True(t, ok)
	assert.True(t, ts.Equal(got))
}
