package ui

// Basic ANSI palette used by the CLI presentation layer. The semantic theme
// colors (Theme fields) cover styled output; these accessors provide the
// classic 8-color codes for simple highlighting, and collapse to empty
// strings when colors are disabled.
const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
	ansiRed       = "\033[31m"
	ansiGreen     = "\033[32m"
	ansiYellow    = "\033[33m"
	ansiBlue      = "\033[34m"
	ansiMagenta   = "\033[35m"
	ansiCyan      = "\033[36m"
)

// colorOrEmpty returns the given escape code, or "" when the active theme
// disables colors.
func colorOrEmpty(code string) string {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	if currentTheme.Name == "none" {
		return ""
	}
	return code
}

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return colorOrEmpty(ansiReset) }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return colorOrEmpty(ansiBold) }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return colorOrEmpty(ansiUnderline) }

// ColorRed returns the escape code for red text.
func ColorRed() string { return colorOrEmpty(ansiRed) }

// ColorGreen returns the escape code for green text.
func ColorGreen() string { return colorOrEmpty(ansiGreen) }

// ColorYellow returns the escape code for yellow text.
func ColorYellow() string { return colorOrEmpty(ansiYellow) }

// ColorBlue returns the escape code for blue text.
func ColorBlue() string { return colorOrEmpty(ansiBlue) }

// ColorMagenta returns the escape code for magenta text.
func ColorMagenta() string { return colorOrEmpty(ansiMagenta) }

// ColorCyan returns the escape code for cyan text.
func ColorCyan() string { return colorOrEmpty(ansiCyan) }
