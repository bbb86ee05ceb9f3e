package board

import (
	"strings"

	"github.com/spf13/afero"
)

// DmiBoardNamePath is where the kernel exposes the DMI board name.
const DmiBoardNamePath = "/sys/class/dmi/id/board_name"

// Detect reads the board name from the DMI tree and looks it up in the
// registry. It reports false both when the file is unreadable and when
// the name is not a supported board.
func Detect(fs afero.Fs) (Board, bool) {
	raw, err := afero.ReadFile(fs, DmiBoardNamePath)
	if err != nil {
		return 0, false
	}
	return FromName(strings.TrimSpace(string(raw)))
}
