// Package palette derives bar fill colours from colour keys.
//
// A frequency table key is itself a colour: "ff0000" is the red bar. The
// mapping from key to fill is a derived field rather than string
// concatenation so the chart never emits an invalid colour.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackFill is used for keys that are not hex colour codes.
const FallbackFill = "#999999"

// Fill is the colour derived from a key.
type Fill struct {
	Key   string         // Original key
	Hex   string         // CSS colour, "#rrggbb"
	Valid bool           // False when Hex is FallbackFill because Key did not parse
	Color colorful.Color // Parsed colour (zero for invalid keys)
}

// DeriveFill returns the fill colour for key.
//
// Keys of 3 or 6 hex digits are read as CSS shorthand and full colours.
// Keys of 1, 2, 4 or 5 digits are left-padded with zeros, which matches the
// extractor's output for colours whose high bytes are zero ("ff" is blue).
// Anything else yields FallbackFill with Valid set to false.
func DeriveFill(key string) Fill {
	norm, ok := Normalize(key)
	if !ok {
		return Fill{Key: key, Hex: FallbackFill}
	}
	c, err := colorful.Hex("#" + norm)
	if err != nil {
		return Fill{Key: key, Hex: FallbackFill}
	}
	return Fill{Key: key, Hex: c.Hex(), Valid: true, Color: c}
}

// Normalize returns key as six lower-case hex digits.
func Normalize(key string) (string, bool) {
	key = strings.ToLower(strings.TrimPrefix(key, "#"))
	if key == "" || len(key) > 6 || !isHex(key) {
		return "", false
	}
	if len(key) == 3 {
		return string([]byte{key[0], key[0], key[1], key[1], key[2], key[2]}), true
	}
	return strings.Repeat("0", 6-len(key)) + key, true
}

// TextColor returns a label colour readable on top of f.
func TextColor(f Fill) string {
	if !f.Valid {
		return "#000000"
	}
	l, _, _ := f.Color.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

// cssNames are the CSS basic colour keywords accepted as backgrounds.
var cssNames = map[string]string{
	"black": "#000000", "silver": "#c0c0c0", "gray": "#808080", "grey": "#808080",
	"white": "#ffffff", "maroon": "#800000", "red": "#ff0000", "purple": "#800080",
	"fuchsia": "#ff00ff", "green": "#008000", "lime": "#00ff00", "olive": "#808000",
	"yellow": "#ffff00", "navy": "#000080", "blue": "#0000ff", "teal": "#008080",
	"aqua": "#00ffff", "orange": "#ffa500",
}

// ParseCSS parses a CSS colour given as "#rgb", "#rrggbb" or a basic colour
// keyword such as "white". Every sink accepts exactly these forms.
func ParseCSS(s string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := cssNames[v]; ok {
		v = hex
	}
	digits, ok := strings.CutPrefix(v, "#")
	if !ok || (len(digits) != 3 && len(digits) != 6) || !isHex(digits) {
		return colorful.Color{}, fmt.Errorf("%q is not a CSS colour (want #rgb, #rrggbb or a basic colour name)", s)
	}
	return colorful.Hex(v)
}
