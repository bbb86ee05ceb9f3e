package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rog-community/rogfanctl/pkg/safety"
	"github.com/rog-community/rogfanctl/pkg/util"
)

func criticalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(util.ColorCritical)
}

// pointStyle highlights the first violating point; everything below it is
// fine, everything past it is unchecked (the validator stops early).
func pointStyle(idx int, violation *safety.Violation) lipgloss.Style {
	if violation == nil || idx < violation.Index {
		return util.OkStyle()
	}
	if idx == violation.Index {
		return criticalStyle()
	}
	return lipgloss.NewStyle().Foreground(util.ColorUnknown)
}
