package core

// Color is a foreground color for a screen cell, expressed as a lipgloss
// color spec: "" for the terminal default, an ANSI index such as "9", or a
// hex code such as "#FF5733".
type Color string

// Predefined colors for interface elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorCyan    Color = "6"
	ColorWhite   Color = "15"
	ColorGray    Color = "245"
)
