package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name  string
		entry *LogEntry
		want  map[string]any
	}{
		{
			name:  "allocates map",
			entry: &LogEntry{},
			want:  map[string]any{"sku": "Widget"},
		},
		{
			name:  "keeps existing keys",
			entry: &LogEntry{Fields: map[string]any{"location": "Bin Deep"}},
			want:  map[string]any{"location": "Bin Deep", "sku": "Widget"},
		},
		{
			name:  "overwrites key",
			entry: &LogEntry{Fields: map[string]any{"sku": "Gadget"}},
			want:  map[string]any{"sku": "Widget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.WithField("sku", "Widget")
			assert.Same(t, tt.entry, got)
			assert.Equal(t, tt.want, got.Fields)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{Fields: map[string]any{"run_id": "r1"}}

	entry.WithFields(map[string]any{"quantity": 60, "layers": 5})

	assert.Equal(t, map[string]any{"run_id": "r1", "quantity": 60, "layers": 5}, entry.Fields)

	empty := &LogEntry{}
	empty.WithFields(nil)
	assert.Nil(t, empty.Fields)
}
