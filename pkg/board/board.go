// Package board enumerates the motherboards and fans the fan-curve
// firmware method is known to exist on. Support is data: adding a board
// means adding a registry row with its method path, fan addresses and
// safety limits, not new branching logic.
package board

import (
	"github.com/rog-community/rogfanctl/pkg/safety"
)

// Fan is a controllable cooling fan. Some boards may not have all fans.
type Fan int

const (
	FanCpu Fan = iota
	FanGpu
)

func (f Fan) String() string {
	switch f {
	case FanCpu:
		return "cpu"
	case FanGpu:
		return "gpu"
	default:
		return "unknown"
	}
}

// Fans lists every defined fan in declaration order.
func Fans() []Fan {
	return []Fan{FanCpu, FanGpu}
}

// FanFromName maps a lower-case fan name to its Fan.
func FanFromName(name string) (Fan, bool) {
	switch name {
	case "cpu":
		return FanCpu, true
	case "gpu":
		return FanGpu, true
	default:
		return 0, false
	}
}

// Board identifies a supported motherboard model. It carries no state of
// its own; everything hangs off the registry.
type Board int

const (
	// GA401 is the ASUS ROG Zephyrus G14 (GA401IV) board.
	GA401 Board = iota
)

type fanParams struct {
	// address is the parameter the firmware method takes to select the fan.
	address uint32
	limits  safety.Limits
}

type boardSpec struct {
	name string
	// methodPath is the ACPI namespace path of the curve-install method.
	methodPath string
	fans       map[Fan]fanParams
}

var registry = map[Board]boardSpec{
	GA401: {
		name:       "GA401IV",
		methodPath: `\_SB.PCI0.SBRG.EC0.SUFC`,
		fans: map[Fan]fanParams{
			FanCpu: {
				address: 0x40,
				limits:  safety.Limits{MinSpeed: [8]uint8{0, 0, 0, 0, 31, 49, 56, 56}},
			},
			FanGpu: {
				address: 0x44,
				limits:  safety.Limits{MinSpeed: [8]uint8{0, 0, 0, 0, 34, 51, 61, 61}},
			},
		},
	},
}

// FromName looks up a board by its exact DMI name. An unknown name is not
// an error, just no match; callers decide how to react.
func FromName(name string) (Board, bool) {
	for b, spec := range registry {
		if spec.name == name {
			return b, true
		}
	}
	return 0, false
}

// Name returns the board's DMI name.
func (b Board) Name() string {
	return registry[b].name
}

func (b Board) String() string {
	return b.Name()
}

// MethodPath returns the ACPI path of the board's curve-install method.
func (b Board) MethodPath() string {
	return registry[b].methodPath
}

// FanAddress returns the firmware address parameter for f, or false when
// the board does not support that fan.
func (b Board) FanAddress(f Fan) (uint32, bool) {
	params, ok := registry[b].fans[f]
	if !ok {
		return 0, false
	}
	return params.address, true
}

// FanLimits returns the safety envelope for f, or false when the board
// does not support that fan.
func (b Board) FanLimits(f Fan) (safety.Limits, bool) {
	params, ok := registry[b].fans[f]
	if !ok {
		return safety.Limits{}, false
	}
	return params.limits, true
}
