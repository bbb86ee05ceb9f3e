// Package ec builds and delivers fan-curve commands for the ROG embedded
// controller. The firmware method takes the 16 curve bytes packed into
// four 32-bit words plus a fan address; the textual rendering produced
// here is the wire contract with acpi_call and must stay bit-exact.
package ec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/rog-community/rogfanctl/pkg/curve"
)

// Command renders the acpi_call command line that installs c on the fan
// at fanAddr: the method path, the four curve words as zero-padded 8-digit
// hex literals, then the unpadded fan address.
func Command(c curve.Curve, methodPath string, fanAddr uint32) string {
	buf := c.Bytes()

	var sb strings.Builder
	sb.WriteString(methodPath)
	for off := 0; off < len(buf); off += 4 {
		word := binary.LittleEndian.Uint32(buf[off : off+4])
		fmt.Fprintf(&sb, " 0x%08x", word)
	}
	fmt.Fprintf(&sb, " %#x", fanAddr)

	return sb.String()
}
