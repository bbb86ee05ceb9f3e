//go:build linux

package ec

import (
	"context"
	"io"
	"os"
)

// AcpiCall is the real Transport: it writes the command to the acpi_call
// procfs file, seeks back to the start and reads the response. One round
// trip per call, no retries.
type AcpiCall struct {
	// Path overrides AcpiCallPath, for tests against a temp file.
	Path string
}

func (a AcpiCall) path() string {
	if a.Path != "" {
		return a.Path
	}
	return AcpiCallPath
}

// Send implements Transport.
func (a AcpiCall) Send(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.OpenFile(a.path(), os.O_RDWR, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(command); err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	out, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
