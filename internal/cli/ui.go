package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
)

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLabel for field names.
	StyleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(labelWidth)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

const labelWidth = 12

func writeField(buf *strings.Builder, label, value string) {
	buf.WriteString("  ")
	buf.WriteString(StyleLabel.Render(label))
	buf.WriteString(StyleValue.Render(value))
	buf.WriteByte('\n')
}
