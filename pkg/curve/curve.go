// Package curve models the 8-point temperature/fan-speed response table the
// ASUS ROG embedded controller accepts through its SUFC firmware method.
//
// Temperatures are degrees celsius. Speeds are roughly a percentage; the
// scale is non-linear and 0 turns the fan off. A point (t, s) means the fan
// runs at s% once the temperature exceeds t.
package curve

import "fmt"

// NumPoints is the fixed number of points in a fan curve. The firmware
// method takes exactly four 32-bit words of temperatures plus speeds, so
// this can never change for the supported controllers.
const NumPoints = 8

// Point is one temperature/speed pair of a curve.
type Point struct {
	Temperature uint8
	Speed       uint8
}

// Curve is an 8-point fan response table. The zero value is all-zero and
// not a useful curve; use New for the vendor baseline. Curve has value
// semantics and is freely copyable.
//
// Storage is a single 16-byte buffer, temperatures at 0..7 and speeds at
// 8..15, matching the word layout the firmware method consumes.
type Curve struct {
	buf [2 * NumPoints]byte
}

// New returns the vendor default curve.
func New() Curve {
	return Curve{
		buf: [16]byte{
			0x1e, 0x2d, 0x32, 0x3c,
			0x46, 0x50, 0x5a, 0x64,
			0x12, 0x12, 0x12, 0x20,
			0x30, 0x40, 0x64, 0x64,
		},
	}
}

// SetPoint overwrites point i. Values are not validated here; range and
// monotonicity are a safety concern, not a structural one. The only error
// is an index outside 0..7, which is never truncated silently.
func (c *Curve) SetPoint(i int, temperature, speed uint8) error {
	if i < 0 || i >= NumPoints {
		return fmt.Errorf("curve point index %d out of range [0,%d]", i, NumPoints-1)
	}
	c.buf[i] = temperature
	c.buf[i+NumPoints] = speed
	return nil
}

// Point returns point i, or an error for an index outside 0..7.
func (c Curve) Point(i int) (Point, error) {
	if i < 0 || i >= NumPoints {
		return Point{}, fmt.Errorf("curve point index %d out of range [0,%d]", i, NumPoints-1)
	}
	return Point{Temperature: c.buf[i], Speed: c.buf[i+NumPoints]}, nil
}

// Points returns all points in index order.
func (c Curve) Points() [NumPoints]Point {
	var pts [NumPoints]Point
	for i := 0; i < NumPoints; i++ {
		pts[i] = Point{Temperature: c.buf[i], Speed: c.buf[i+NumPoints]}
	}
	return pts
}

// Bytes returns the raw 16-byte buffer in firmware order: temperatures
// first, speeds second.
func (c Curve) Bytes() [2 * NumPoints]byte {
	return c.buf
}
