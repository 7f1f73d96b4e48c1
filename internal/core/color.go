package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
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
	ColorOrange
	ColorPink
	ColorGray
)

// Palette is the obstacle color rotation.
var Palette = []Color{
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorYellow,
	ColorOrange,
	ColorMagenta,
	ColorCyan,
	ColorPink,
}
