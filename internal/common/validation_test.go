package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name             string
		format           string
		supportedFormats []string
		expectError      bool
	}{
		{"valid json", "json", supported, false},
		{"valid text", "text", supported, false},
		{"valid markdown", "markdown", supported, false},
		{"unsupported xml", "xml", supported, true},
		{"case sensitive", "JSON", supported, true},
		{"empty format", "", supported, true},
		{"no restrictions configured", "xml", nil, false},
		{"single format invalid", "text", []string{"json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supportedFormats)
			if tt.expectError && err == nil {
				t.Errorf("expected error for format %q", tt.format)
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error for format %q, got %v", tt.format, err)
			}
		})
	}
}
