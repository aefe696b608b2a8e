package descriptors

import "testing"

func TestVersion_FromBCD(t *testing.T) {
	v := FromBCD(0x0110)
	if v.Major != 1 || v.Minor != 1 || v.Patch != 0 {
		t.Errorf("FromBCD(0x0110) = %d.%d.%d, want 1.1.0", v.Major, v.Minor, v.Patch)
	}
	if s := v.String(); s != "1.10" {
		t.Errorf("String() = %q, want %q", s, "1.10")
	}

	v = FromBCD(0x0252)
	if v.Major != 2 || v.Minor != 5 || v.Patch != 2 {
		t.Errorf("FromBCD(0x0252) = %d.%d.%d, want 2.5.2", v.Major, v.Minor, v.Patch)
	}
}

func TestVersion_BCDRoundTrip(t *testing.T) {
	for _, raw := range []uint16{0x0100, 0x0110, 0x0200, 0x0252, 0x0300, 0x1234} {
		if got := FromBCD(raw).BCD(); got != raw {
			t.Errorf("BCD() = %#04x, want %#04x", got, raw)
		}
	}
}
