package core

import "strings"

// Color represents a named color for sprites, text and screen cells.
// Terminal platforms map it to ANSI 256-color codes, window platforms
// to RGB values of the same name.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "brightred",
	ColorBrightGreen:   "brightgreen",
	ColorBrightYellow:  "brightyellow",
	ColorBrightBlue:    "brightblue",
	ColorBrightMagenta: "brightmagenta",
	ColorBrightCyan:    "brightcyan",
	ColorBrightWhite:   "brightwhite",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor resolves a color name (case-insensitive, "grey" accepted).
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "grey" {
		name = "gray"
	}
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
