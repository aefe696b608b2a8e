package audio

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/valerierx/cyme/pkg/descriptors"
)

func TestHeader1_RoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x1e, 0x00, 0x02, 0x01, 0x02}
	h := &Header1{}
	if err := h.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if h.Version.String() != "1.00" {
		t.Errorf("Version = %s, want 1.00", h.Version)
	}
	if h.TotalLength != 30 {
		t.Errorf("TotalLength = %d, want 30", h.TotalLength)
	}
	if !bytes.Equal(h.Interfaces, []byte{0x01, 0x02}) {
		t.Errorf("Interfaces = % x, want 01 02", h.Interfaces)
	}
	out, _ := h.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestMixerUnit1_TruncatedPinTable(t *testing.T) {
	m := &MixerUnit1{}
	err := m.UnmarshalBinary([]byte{0x01, 0x05, 0x02})
	if !errors.Is(err, descriptors.ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestFeatureUnit1_ControlTable(t *testing.T) {
	// two bytes per channel, master plus one logical channel
	raw := []byte{0x02, 0x01, 0x02, 0x03, 0x00, 0x01, 0x00, 0x00}
	f := &FeatureUnit1{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if f.UnitID != 2 || f.SourceID != 1 || f.ControlSize != 2 {
		t.Errorf("unit = %+v, want id 2 source 1 size 2", f)
	}
	if !bytes.Equal(f.Controls, []byte{0x03, 0x00, 0x01, 0x00}) {
		t.Errorf("Controls = % x, want 03 00 01 00", f.Controls)
	}
	names := ControlNames(0x03, FeatureUnitControls1)
	if !reflect.DeepEqual(names, []string{"Mute", "Volume"}) {
		t.Errorf("master controls = %v, want Mute, Volume", names)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestProcessingUnit1_UpDownMixModes(t *testing.T) {
	raw := []byte{
		0x05,       // bUnitID
		0x01, 0x00, // wProcessType up/down-mix
		0x01, 0x09, // one pin, source 9
		0x02, 0x03, 0x00, // two channels, L+R
		0x00,       // iChannelNames
		0x01, 0x01, // one control byte
		0x00,                         // iProcessing
		0x02, 0x03, 0x00, 0x07, 0x00, // two modes
	}
	p := &ProcessingUnit1{}
	if err := p.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if p.UpDownMix == nil {
		t.Fatal("UpDownMix = nil, want mode table")
	}
	if !reflect.DeepEqual(p.UpDownMix.Modes, []uint16{0x0003, 0x0007}) {
		t.Errorf("Modes = %#x, want [0x3 0x7]", p.UpDownMix.Modes)
	}
	out, _ := p.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestInputTerminal2_RoundTrip(t *testing.T) {
	raw := []byte{
		0x01,       // bTerminalID
		0x01, 0x02, // wTerminalType microphone
		0x00,                   // bAssocTerminal
		0x09,                   // bCSourceID
		0x02,                   // bNrChannels
		0x03, 0x00, 0x00, 0x00, // bmChannelConfig FL+FR
		0x00,       // iChannelNames
		0x05, 0x00, // bmControls
		0x00, // iTerminal
	}
	it := &InputTerminal2{}
	if err := it.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if it.TerminalID != 1 || it.TerminalType != 0x0201 || it.CSourceID != 9 {
		t.Errorf("terminal = %+v, want id 1 type 0x0201 clock 9", it)
	}
	if it.NrChannels != 2 || it.ChannelConfig != 0x03 {
		t.Errorf("cluster = %d ch %#x, want 2 ch 0x3", it.NrChannels, it.ChannelConfig)
	}
	names := ChannelNames(ProtocolUac2, it.ChannelConfig)
	if !reflect.DeepEqual(names, []string{"Front Left (FL)", "Front Right (FR)"}) {
		t.Errorf("ChannelNames = %v", names)
	}
	out, _ := it.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestFeatureUnit2_ControlCount(t *testing.T) {
	raw := []byte{
		0x0a, 0x02,
		0x0f, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00,
		0x00,
	}
	f := &FeatureUnit2{}
	if err := f.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !reflect.DeepEqual(f.Controls, []uint32{0x0f, 0x05}) {
		t.Errorf("Controls = %#x, want [0xf 0x5]", f.Controls)
	}
	out, _ := f.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestProcessingUnit3_MultiFunction(t *testing.T) {
	raw := []byte{
		0x08,       // bUnitID
		0x03, 0x00, // wProcessType multi function
		0x01, 0x09, // one pin, source 9
		0x00, 0x00, // wProcessingDescrStr
		0x03, 0x00, 0x00, 0x00, // bmControls
		0x01, 0x00, // wClusterDescrID
		0x05, 0x00, 0x00, 0x00, // bmAlgorithms
	}
	p := &ProcessingUnit3{}
	if err := p.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if p.MultiFunction == nil {
		t.Fatal("MultiFunction = nil, want process-specific tail")
	}
	if p.MultiFunction.ClusterDescrID != 1 || p.MultiFunction.Algorithms != 0x05 {
		t.Errorf("MultiFunction = %+v, want cluster 1 algorithms 0x5", p.MultiFunction)
	}
	algs := ControlNames(p.MultiFunction.Algorithms, MultiFunctionAlgorithms3)
	want := []string{"Beam Forming", "Active Noise Cancellation"}
	if !reflect.DeepEqual(algs, want) {
		t.Errorf("algorithms = %v, want %v", algs, want)
	}
	out, _ := p.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestPowerDomain_RoundTrip(t *testing.T) {
	raw := []byte{
		0x01,       // bPowerDomainID
		0x00, 0x01, // waRecoveryTime(1)
		0x40, 0x00, // waRecoveryTime(2)
		0x02, 0x05, 0x06, // two entities
		0x00, 0x00, // wPDomainDescrStr
	}
	p := &PowerDomain{}
	if err := p.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if p.RecoveryTime1 != 0x0100 || p.RecoveryTime2 != 0x0040 {
		t.Errorf("recovery = %d/%d, want 256/64", p.RecoveryTime1, p.RecoveryTime2)
	}
	if !bytes.Equal(p.EntityIDs, []byte{0x05, 0x06}) {
		t.Errorf("EntityIDs = % x, want 05 06", p.EntityIDs)
	}
	out, _ := p.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestStreamingInterface3_RoundTrip(t *testing.T) {
	raw := []byte{
		0x01,                   // bTerminalLink
		0x07, 0x00, 0x00, 0x00, // bmControls
		0x02, 0x00, // wClusterDescrID
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // bmFormats
		0x02,       // bSubslotSize
		0x10,       // bBitResolution
		0x00, 0x00, // bmAuxProtocols
		0x00, // bControlSize
	}
	s := &StreamingInterface3{}
	if err := s.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if s.TerminalLink != 1 || s.ClusterDescrID != 2 {
		t.Errorf("link = %d cluster = %d, want 1/2", s.TerminalLink, s.ClusterDescrID)
	}
	if s.Formats != 1 || s.SubSlotSize != 2 || s.BitResolution != 16 {
		t.Errorf("format = %+v, want PCM 2-byte 16-bit", s)
	}
	out, _ := s.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestDataStreamingEndpoint3_RoundTrip(t *testing.T) {
	raw := []byte{0x0f, 0x00, 0x00, 0x00, 0x02, 0x08, 0x00}
	d := &DataStreamingEndpoint3{}
	if err := d.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if d.Controls != 0x0f || d.LockDelayUnits != 2 || d.LockDelay != 8 {
		t.Errorf("endpoint = %+v, want controls 0xf units 2 delay 8", d)
	}
	out, _ := d.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}
