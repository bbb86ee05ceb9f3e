//go:build !linux

package ec

import (
	"context"
	"errors"
)

// AcpiCall only exists on Linux; this stub keeps the package buildable on
// other platforms for development and tests.
type AcpiCall struct {
	Path string
}

// Send implements Transport.
func (a AcpiCall) Send(_ context.Context, _ string) (string, error) {
	return "", errors.New("acpi_call transport is only available on linux")
}
