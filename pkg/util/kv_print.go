package util

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ColorCritical = lipgloss.Color("#cc0000")
	ColorWarning  = lipgloss.Color("#e69138")
	ColorOk       = lipgloss.Color("#04B575")
	ColorUnknown  = lipgloss.Color("#68228B")
)

func OkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorOk)
}

// KeyValuePair is one row of a PrintKeyValues table. Style receives the
// row's values and picks the render style, so colouring can depend on the
// value itself.
type KeyValuePair struct {
	Key    string
	Format string
	Value  []any
	Style  func([]any) lipgloss.Style
}

// PrintKeyValues renders rows as an aligned, styled key/value listing.
func PrintKeyValues(pairs []KeyValuePair) string {
	keyWidth := 0
	for _, pair := range pairs {
		if len(pair.Key) > keyWidth {
			keyWidth = len(pair.Key)
		}
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Width(keyWidth + 1)

	var sb strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			sb.WriteString("\n")
		}

		value := fmt.Sprintf(pair.Format, pair.Value...)
		valueStyle := lipgloss.NewStyle()
		if pair.Style != nil {
			valueStyle = pair.Style(pair.Value)
		}

		sb.WriteString(keyStyle.Render(pair.Key + ":"))
		sb.WriteString(" ")
		sb.WriteString(valueStyle.Render(value))
	}

	return sb.String()
}
