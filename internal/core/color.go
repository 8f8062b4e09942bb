package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Basic palette.
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
	ColorGold
)

// Semantic colors for playfield entities.
const (
	ColorPlayer         = ColorBrightCyan
	ColorPlayerReversed = ColorBrightMagenta
	ColorPlatform       = ColorGreen
	ColorObstacle       = ColorBrightRed
	ColorGoal           = ColorGold
	ColorScore          = ColorRed
	ColorButton         = ColorGold
	ColorButtonHover    = ColorBrightYellow
)
