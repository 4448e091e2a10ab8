package formatter

import "github.com/fatih/color"

// Terminal styles. Each styled segment is reset right after it is written.
var (
	emphasisStyle = color.New(color.FgHiYellow)
	findingStyle  = color.New(color.FgHiRed)
)
