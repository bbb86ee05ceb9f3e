//go:build linux

package ec_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rog-community/rogfanctl/pkg/ec"
)

// Against a regular file the write-seek-read cycle reads back whatever was
// written, which is exactly what we want to verify here; the procfs file
// substitutes the firmware response on the read side.
func TestAcpiCall_Send(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "call")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	transport := ec.AcpiCall{Path: path}
	response, err := transport.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", response)
}

func TestAcpiCall_SendMissingFile(t *testing.T) {
	t.Parallel()

	transport := ec.AcpiCall{Path: filepath.Join(t.TempDir(), "missing")}
	_, err := transport.Send(context.Background(), "hello")
	assert.Error(t, err)
}

func TestAcpiCall_SendCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport := ec.AcpiCall{Path: filepath.Join(t.TempDir(), "call")}
	_, err := transport.Send(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
