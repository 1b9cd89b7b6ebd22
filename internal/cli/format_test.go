package cli

import "testing"

func TestShortID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"full uuid id", "visitor_9b2f4c1a-8d3e-4f5a-b6c7-d8e9f0a1b2c3", "visitor_9b2f4c1a"},
		{"already short", "visitor_9b2f", "visitor_9b2f"},
		{"exact length", "visitor_12345678", "visitor_12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shortID(tt.id)
			if result != tt.expected {
				t.Errorf("shortID(%q) = %q, want %q", tt.id, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world!", 8, "hello..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}
