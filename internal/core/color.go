package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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

	// Space palette (dark navy to mint).
	ColorShipBase   // #145d87
	ColorShipAccent // #228399
	ColorPowerUp    // #31b0b0
	ColorBullet     // #46cfb3
	ColorScore      // #73f0c6
	ColorHighlight  // #abffd1
)
