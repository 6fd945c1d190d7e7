package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)

// ParseColor maps a color name (as used in sprite files) to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "white":
		return ColorWhite
	case "bright_red":
		return ColorBrightRed
	case "bright_green":
		return ColorBrightGreen
	case "bright_blue":
		return ColorBrightBlue
	case "bright_white":
		return ColorBrightWhite
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
