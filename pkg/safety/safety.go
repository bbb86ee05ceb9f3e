// Package safety checks a fan curve against the vendor safety envelope.
// The limits match the ones enforced by atrofac and Armoury Crate: each
// point's temperature must stay inside a fixed 10-degree band, and speeds
// must clear a per-fan floor while never decreasing across the curve.
//
// A violation is advisory. Nothing in this package, or in the controller
// call path, refuses to install an unsafe curve; callers decide whether
// to warn and proceed or abort.
package safety

import (
	"fmt"

	"github.com/rog-community/rogfanctl/pkg/curve"
)

// Limits is the per-fan part of the safety envelope: the minimum allowed
// speed at each curve index. The temperature bands are shared by all fans
// and derived from the index (TempBand).
type Limits struct {
	MinSpeed [curve.NumPoints]uint8
}

// TempBand returns the allowed temperature range [min, max] for point i.
// Band i covers 30+10i through 39+10i degrees.
func TempBand(i int) (min, max uint8) {
	return uint8(30 + 10*i), uint8(39 + 10*i)
}

// ViolationKind discriminates the ways a curve can break the envelope.
type ViolationKind int

const (
	// TempOutOfRange means a point's temperature is outside its band.
	TempOutOfRange ViolationKind = iota
	// SpeedTooLow means a point's speed is below the fan's floor for that
	// index, or below the previous point's speed.
	SpeedTooLow
)

func (k ViolationKind) String() string {
	switch k {
	case TempOutOfRange:
		return "temperature out of range"
	case SpeedTooLow:
		return "speed too low"
	default:
		return "unknown violation"
	}
}

// Violation reports the first point of a curve that breaks the envelope.
type Violation struct {
	Kind  ViolationKind
	Index int
}

func (v *Violation) Error() string {
	min, max := TempBand(v.Index)
	if v.Kind == TempOutOfRange {
		return fmt.Sprintf("curve point %d: %s (band is %d-%d)", v.Index, v.Kind, min, max)
	}
	return fmt.Sprintf("curve point %d: %s", v.Index, v.Kind)
}

// Check validates c against the envelope for a fan with the given limits.
// It returns nil for a safe curve, or the first violation in ascending
// index order; it never aggregates.
func Check(c curve.Curve, limits Limits) *Violation {
	var lastSpeed uint8
	for i, pt := range c.Points() {
		minTemp, maxTemp := TempBand(i)
		if pt.Temperature < minTemp || pt.Temperature > maxTemp {
			return &Violation{Kind: TempOutOfRange, Index: i}
		}
		if pt.Speed < limits.MinSpeed[i] || pt.Speed < lastSpeed {
			return &Violation{Kind: SpeedTooLow, Index: i}
		}
		lastSpeed = pt.Speed
	}
	return nil
}
