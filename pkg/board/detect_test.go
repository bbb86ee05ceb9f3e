package board_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rog-community/rogfanctl/pkg/board"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, board.DmiBoardNamePath, []byte("GA401IV\n"), 0o444))

	b, ok := board.Detect(fs)
	require.True(t, ok)
	assert.Equal(t, board.GA401, b)
}

func TestDetect_UnknownBoard(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, board.DmiBoardNamePath, []byte("X570 AORUS\n"), 0o444))

	_, ok := board.Detect(fs)
	assert.False(t, ok)
}

func TestDetect_MissingDmiFile(t *testing.T) {
	t.Parallel()

	_, ok := board.Detect(afero.NewMemMapFs())
	assert.False(t, ok)
}
