package palette

import "testing"

func TestDeriveFill(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantHex   string
		wantValid bool
	}{
		{"six digits", "ff0000", "#ff0000", true},
		{"upper case", "00FF7F", "#00ff7f", true},
		{"shorthand", "0f0", "#00ff00", true},
		{"dropped leading zeros", "ff", "#0000ff", true},
		{"four digits", "ff00", "#00ff00", true},
		{"five digits", "80000", "#080000", true},
		{"single digit", "1", "#000001", true},
		{"leading hash", "#abcdef", "#abcdef", true},

		{"empty", "", FallbackFill, false},
		{"too long", "ff00ff00", FallbackFill, false},
		{"not hex", "zzzzzz", FallbackFill, false},
		{"trailing garbage", "12345z", FallbackFill, false},
		{"name", "red", FallbackFill, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DeriveFill(tt.key)
			if f.Hex != tt.wantHex {
				t.Errorf("DeriveFill(%q).Hex = %q, want %q", tt.key, f.Hex, tt.wantHex)
			}
			if f.Valid != tt.wantValid {
				t.Errorf("DeriveFill(%q).Valid = %v, want %v", tt.key, f.Valid, tt.wantValid)
			}
			if f.Key != tt.key {
				t.Errorf("DeriveFill(%q).Key = %q", tt.key, f.Key)
			}
		})
	}
}

func TestTextColor(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"ffffff", "#000000"},
		{"ffff00", "#000000"},
		{"000000", "#ffffff"},
		{"0000ff", "#ffffff"},
		{"nothex", "#000000"},
	}

	for _, tt := range tests {
		if got := TextColor(DeriveFill(tt.key)); got != tt.want {
			t.Errorf("TextColor(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseCSS(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ffffff", "#ffffff", false},
		{"#FFF", "#ffffff", false},
		{"white", "#ffffff", false},
		{" Navy ", "#000080", false},
		{"grey", "#808080", false},
		{"ffffff", "", true},
		{"#ffff", "", true},
		{"#gggggg", "", true},
		{"rebeccapurple", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		c, err := ParseCSS(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCSS(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && c.Hex() != tt.want {
			t.Errorf("ParseCSS(%q) = %s, want %s", tt.in, c.Hex(), tt.want)
		}
	}
}
