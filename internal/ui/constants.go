package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Layout sizing
const (
	LabelColumnWidth float32 = 110
	LogPanelMinH     float32 = 80
)

// Text fragments
const (
	LogLineSeparator = "\n"
	ToolStatusFormat = "%s: %s (%s)"
)
