package style

import (
	"fmt"
	"image/color"
	"strconv"
)

// Theme holds the board palette
type Theme struct {
	BackgroundTop    color.RGBA
	BackgroundBottom color.RGBA
	Head             color.RGBA
	Body             color.RGBA
	Food             color.RGBA
	Eye              color.RGBA
	Text             color.RGBA
	GameOver         color.RGBA
	Border           color.RGBA
}

// DefaultTheme is the green meadow palette
var DefaultTheme = Theme{
	BackgroundTop:    MustParseHex("#b7e4c7"),
	BackgroundBottom: MustParseHex("#40916c"),
	Head:             MustParseHex("#2d6a4f"),
	Body:             MustParseHex("#52b788"),
	Food:             MustParseHex("#e63946"),
	Eye:              MustParseHex("#ffffff"),
	Text:             MustParseHex("#1b4332"),
	GameOver:         MustParseHex("#e63946"),
	Border:           MustParseHex("#081c15"),
}

// ParseHex reads #rgb, #rrggbb or #rrggbbaa
func ParseHex(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: missing #", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: bad length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustParseHex is ParseHex for package-level palettes
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp blends a toward b by t in [0,1]
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
