package descriptors

import "fmt"

// Version is a binary-coded-decimal release number (bcdUSB, bcdADC,
// bcdHID, ...) split into its decimal digits. FromBCD followed by BCD is
// lossless for well-formed BCD values, which keeps descriptor round-trips
// byte exact.
type Version struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// FromBCD decodes a little-endian-read BCD word, e.g. 0x0110 -> 1.1.0.
func FromBCD(raw uint16) Version {
	return Version{
		Major: uint8((raw>>12)&0x0f)*10 + uint8((raw>>8)&0x0f),
		Minor: uint8((raw >> 4) & 0x0f),
		Patch: uint8(raw & 0x0f),
	}
}

// BCD re-encodes the version as the wire BCD word.
func (v Version) BCD() uint16 {
	return uint16(v.Major/10)<<12 | uint16(v.Major%10)<<8 | uint16(v.Minor)<<4 | uint16(v.Patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d%d", v.Major, v.Minor, v.Patch)
}
