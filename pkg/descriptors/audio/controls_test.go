package audio

import (
	"reflect"
	"testing"
)

func TestControls_OneBitMap(t *testing.T) {
	got := Controls(0b11, FeatureUnitControls1, BmControl1)
	want := []Control{{Name: "Mute"}, {Name: "Volume"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Controls = %v, want %v", got, want)
	}
	if got := Controls(0, FeatureUnitControls1, BmControl1); got != nil {
		t.Errorf("Controls(0) = %v, want nil", got)
	}
}

func TestControls_TwoBitMap(t *testing.T) {
	got := Controls(0b11, SelectorUnitControls2, BmControl2)
	want := []Control{{Name: "Selector", Setting: ControlSettingReadWrite}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Controls = %v, want %v", got, want)
	}

	// 0b01 read-only in field 0, 0b10 reserved pattern in field 1
	got = Controls(0b1001, ClockSourceControls2, BmControl2)
	want = []Control{
		{Name: "Clock Frequency", Setting: ControlSettingReadOnly},
		{Name: "Clock Validity", Setting: ControlSettingIllegalValue},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Controls = %v, want %v", got, want)
	}
	if got := want[1].Setting.String(); got != "ILLEGAL VALUE (0b10)" {
		t.Errorf("Setting.String = %q", got)
	}
}

func TestControls_BitsBeyondTableIgnored(t *testing.T) {
	// only one label, so field 1 is device-reserved
	got := Controls(0b1111, SelectorUnitControls2, BmControl2)
	if len(got) != 1 || got[0].Name != "Selector" {
		t.Errorf("Controls = %v, want just Selector", got)
	}
}

func TestControlNames_SkipsReservedBits(t *testing.T) {
	got := ControlNames(0x03, ClockSourceAttrs2)
	want := []string{"External", "Internal fixed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ControlNames = %v, want %v", got, want)
	}

	// bits 3..6 of the UAC1 endpoint attrs have no label
	got = ControlNames(0b10001001, EndpointAttrs1)
	want = []string{"Sampling Frequency", "MaxPacketsOnly"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ControlNames = %v, want %v", got, want)
	}
}

func TestChannelNames(t *testing.T) {
	got := ChannelNames(ProtocolUac1, 0x0003)
	want := []string{"Left Front (L)", "Right Front (R)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UAC1 ChannelNames = %v, want %v", got, want)
	}

	got = ChannelNames(ProtocolUac2, 1<<31|0x0001)
	want = []string{"Front Left (FL)", "Raw Data (RD)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UAC2 ChannelNames = %v, want %v", got, want)
	}

	if got := ChannelNames(ProtocolUac3, 0x0003); got != nil {
		t.Errorf("UAC3 ChannelNames = %v, want nil", got)
	}
}

func TestProcessTypeName(t *testing.T) {
	cases := []struct {
		protocol Protocol
		typ      uint16
		want     string
	}{
		{ProtocolUac1, 0x01, "Up/Down-mix"},
		{ProtocolUac2, 0x02, "Dolby Prologic"},
		{ProtocolUac3, 0x02, "Stereo Extender"},
		{ProtocolUac3, 0x03, "Multi Function"},
		{ProtocolUac1, 0x07, "Undefined"},
	}
	for _, c := range cases {
		if got := ProcessTypeName(c.protocol, c.typ); got != c.want {
			t.Errorf("ProcessTypeName(%v, %#x) = %q, want %q", c.protocol, c.typ, got, c.want)
		}
	}
}

func TestFormatTagName(t *testing.T) {
	cases := []struct {
		tag  uint16
		want string
	}{
		{0x0001, "PCM"},
		{0x0003, "IEEE_FLOAT"},
		{0x1001, "MPEG"},
		{0x1002, "AC-3"},
		{0x2001, "IEC1937_AC-3"},
		{0x0006, "undefined"},
		{0x3000, "undefined"},
	}
	for _, c := range cases {
		if got := FormatTagName(c.tag); got != c.want {
			t.Errorf("FormatTagName(%#x) = %q, want %q", c.tag, got, c.want)
		}
	}
}
