package errors

import (
	"math"
	"testing"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"default", 960, 500, false},
		{"tiny", 1, 1, false},
		{"max", MaxDimension, MaxDimension, false},

		{"zero width", 0, 500, true},
		{"negative height", 960, -1, true},
		{"too wide", MaxDimension + 1, 500, true},
		{"nan", math.NaN(), 500, true},
		{"inf", 960, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSize) {
				t.Errorf("ValidateSize error code = %v, want %v", GetCode(err), ErrCodeInvalidSize)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"zero", 0, true},
		{"one", 1, false},
		{"default", 200, false},
		{"max", MaxLimit, false},
		{"negative", -1, true},
		{"too large", MaxLimit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLimit(tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLimit(%d) error = %v, wantErr %v", tt.limit, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "img_data2.json", false},
		{"absolute", "/tmp/colors.json", false},
		{"nested", "data/2024/colors.json", false},

		{"empty", "", true},
		{"null byte", "foo\x00.json", true},
		{"newline", "foo\n.json", true},
		{"too long", string(make([]byte, 5000)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/img_data2.json", false},
		{"http", "http://localhost:8080/data.json", false},
		{"empty", "", true},
		{"ftp", "ftp://example.com/data.json", true},
		{"no scheme", "example.com/data.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
