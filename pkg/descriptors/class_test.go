package descriptors

import (
	"bytes"
	"errors"
	"testing"
)

func TestHidDescriptor_RoundTrip(t *testing.T) {
	raw := []byte{0x09, 0x21, 0x11, 0x01, 0x21, 0x02, 0x22, 0x3f, 0x00}
	hd := &HidDescriptor{}
	if err := hd.UnmarshalBinary(raw); err != nil {
		// two records declared but only one present
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("err = %v, want ErrTruncated", err)
		}
	} else {
		t.Fatal("UnmarshalBinary accepted a short record table")
	}

	raw = []byte{0x0c, 0x21, 0x11, 0x01, 0x21, 0x02, 0x22, 0x3f, 0x00, 0x23, 0x10, 0x00}
	if err := hd.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if hd.CountryCode != 0x21 {
		t.Errorf("CountryCode = %#x, want 0x21", hd.CountryCode)
	}
	if len(hd.Descriptors) != 2 {
		t.Fatalf("Descriptors = %d, want 2", len(hd.Descriptors))
	}
	if hd.Descriptors[0].Length != 0x3f || hd.Descriptors[0].DescriptorType != 0x22 {
		t.Errorf("record 0 = %+v, want type 0x22 length 63", hd.Descriptors[0])
	}
	if hd.Descriptors[1].DescriptorType != 0x23 {
		t.Errorf("record 1 type = %#x, want 0x23 (physical)", hd.Descriptors[1].DescriptorType)
	}
	out, _ := hd.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestCcidDescriptor_RoundTrip(t *testing.T) {
	raw := make([]byte, 54)
	raw[0] = 0x36
	raw[1] = 0x21
	raw[2], raw[3] = 0x10, 0x01 // bcdCCID 1.10
	raw[4] = 0x00               // bMaxSlotIndex
	raw[5] = 0x07               // bVoltageSupport
	raw[6] = 0x03               // dwProtocols T=0, T=1
	raw[10] = 0xa0
	raw[11] = 0x0f // dwDefaultClock 4000
	raw[53] = 0x01 // bMaxCCIDBusySlots

	cd := &CcidDescriptor{}
	if err := cd.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if cd.Version.String() != "1.10" {
		t.Errorf("Version = %s, want 1.10", cd.Version)
	}
	if cd.Protocols != 0x03 {
		t.Errorf("Protocols = %#x, want 0x03", cd.Protocols)
	}
	if cd.DefaultClock != 4000 {
		t.Errorf("DefaultClock = %d, want 4000", cd.DefaultClock)
	}
	if cd.MaxCCIDBusySlots != 1 {
		t.Errorf("MaxCCIDBusySlots = %d, want 1", cd.MaxCCIDBusySlots)
	}
	out, _ := cd.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}

	if err := cd.UnmarshalBinary(raw[:53]); !errors.Is(err, ErrTruncated) {
		t.Errorf("53-byte err = %v, want ErrTruncated", err)
	}
}

func TestPrinterDescriptor_Records(t *testing.T) {
	raw := []byte{
		0x0c, 0x21, 0x01, 0x01, // header, one record
		0x00, 0x06, 0x03, 0x00, 0x01, 0x04, 0xaa, 0xbb, // record: 6+2 bytes
	}
	pd := &PrinterDescriptor{}
	if err := pd.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if len(pd.Descriptors) != 1 {
		t.Fatalf("Descriptors = %d, want 1", len(pd.Descriptors))
	}
	rec := pd.Descriptors[0]
	if rec.Capabilities != 0x0003 {
		t.Errorf("Capabilities = %#x, want 0x0003", rec.Capabilities)
	}
	if rec.UUIDStringIndex != 4 {
		t.Errorf("UUIDStringIndex = %d, want 4", rec.UUIDStringIndex)
	}
	if !bytes.Equal(rec.Data, []byte{0xaa, 0xbb}) {
		t.Errorf("Data = % x, want aa bb", rec.Data)
	}
	out, _ := pd.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestPrinterDescriptor_ShortFinalRecordStops(t *testing.T) {
	// second record declares more bytes than remain; the walk keeps the
	// first and stops
	raw := []byte{
		0x10, 0x21, 0x01, 0x02,
		0x00, 0x04, 0x01, 0x00, 0x01, 0x02,
		0x00, 0x20, 0x00, 0x00,
	}
	pd := &PrinterDescriptor{}
	if err := pd.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if len(pd.Descriptors) != 1 {
		t.Errorf("Descriptors = %d, want 1", len(pd.Descriptors))
	}
}

func TestCommunicationDescriptor_StringIndex(t *testing.T) {
	// Ethernet Networking: iMACAddress directly after the subtype
	raw := []byte{0x0d, 0x24, 0x0f, 0x03, 0x00, 0x00, 0x00, 0x00, 0xea, 0x05, 0x00, 0x00, 0x00}
	cd := &CommunicationDescriptor{}
	if err := cd.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if cd.CommunicationType != CdcTypeEthernetNetworking {
		t.Errorf("CommunicationType = %v, want Ethernet Networking", cd.CommunicationType)
	}
	if cd.StringIndex == nil || *cd.StringIndex != 3 {
		t.Errorf("StringIndex = %v, want 3", cd.StringIndex)
	}
	out, _ := cd.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}

	// Header carries no string
	header := []byte{0x05, 0x24, 0x00, 0x10, 0x01}
	if err := cd.UnmarshalBinary(header); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if cd.StringIndex != nil {
		t.Errorf("StringIndex = %v, want nil for header", cd.StringIndex)
	}
}

func TestUvcDescriptor_ExtensionUnitGUID(t *testing.T) {
	raw := make([]byte, 27)
	raw[0] = 27
	raw[1] = 0x24
	raw[2] = byte(UvcInterfaceExtensionUnit)
	raw[3] = 0x06 // bUnitID
	// GUID in wire order: first three groups little-endian
	guid := []byte{
		0x78, 0x56, 0x34, 0x12,
		0xbc, 0x9a,
		0xf0, 0xde,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}
	copy(raw[4:20], guid)
	raw[20] = 0x02 // bNumControls
	raw[21] = 0x01 // bNrInPins
	raw[22] = 0x05 // baSourceID
	raw[23] = 0x02 // bControlSize
	raw[24] = 0xff
	raw[25] = 0x03
	raw[26] = 0x08 // iExtension

	vd := &UvcDescriptor{}
	if err := vd.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if vd.SubType != UvcInterfaceExtensionUnit {
		t.Errorf("SubType = %v, want Extension Unit", vd.SubType)
	}
	if vd.StringIndex == nil || *vd.StringIndex != 0x08 {
		t.Errorf("StringIndex = %v, want 8", vd.StringIndex)
	}
	id, ok := vd.GUID()
	if !ok {
		t.Fatal("GUID not decoded")
	}
	if id.String() != "12345678-9abc-def0-0123-456789abcdef" {
		t.Errorf("GUID = %s, want 12345678-9abc-def0-0123-456789abcdef", id)
	}
	out, _ := vd.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}
}

func TestUvcDescriptor_StringIndexPositions(t *testing.T) {
	// input terminal: iTerminal at byte 7
	it := []byte{0x08, 0x24, 0x02, 0x01, 0x01, 0x02, 0x00, 0x05}
	vd := &UvcDescriptor{}
	if err := vd.UnmarshalBinary(it); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if vd.StringIndex == nil || *vd.StringIndex != 5 {
		t.Errorf("input terminal StringIndex = %v, want 5", vd.StringIndex)
	}

	// selector unit: index follows the pin list
	su := []byte{0x08, 0x24, 0x04, 0x04, 0x02, 0x01, 0x02, 0x07}
	if err := vd.UnmarshalBinary(su); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if vd.StringIndex == nil || *vd.StringIndex != 7 {
		t.Errorf("selector unit StringIndex = %v, want 7", vd.StringIndex)
	}
}

func TestMidiDescriptor_StringIndexPositions(t *testing.T) {
	md := &MidiDescriptor{}

	// input jack: iJack at byte 5
	ij := []byte{0x06, 0x24, 0x02, 0x01, 0x01, 0x09}
	if err := md.UnmarshalBinary(ij); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if md.MidiType != MidiSubtypeInputJack {
		t.Errorf("MidiType = %v, want Input Jack", md.MidiType)
	}
	if md.StringIndex == nil || *md.StringIndex != 9 {
		t.Errorf("input jack StringIndex = %v, want 9", md.StringIndex)
	}

	// output jack with two source pins: iJack at 6 + 2*2
	oj := []byte{0x0b, 0x24, 0x03, 0x01, 0x03, 0x02, 0x01, 0x01, 0x02, 0x01, 0x0c}
	if err := md.UnmarshalBinary(oj); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if md.StringIndex == nil || *md.StringIndex != 0x0c {
		t.Errorf("output jack StringIndex = %v, want 12", md.StringIndex)
	}

	// element: iElement past the pin pairs and the capability bitmap
	el := []byte{
		0x0d, 0x24, 0x04,
		0x0a,       // bElementID
		0x01,       // bNrInputPins
		0x01, 0x01, // input pin pair
		0x01,       // bNrOutputPins
		0x02, 0x03, // bInTerminalLink, bOutTerminalLink
		0x01, // bElCapsSize
		0x05, // bmElementCaps
		0x0d, // iElement
	}
	if err := md.UnmarshalBinary(el); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if md.StringIndex == nil || *md.StringIndex != 0x0d {
		t.Errorf("element StringIndex = %v, want 13", md.StringIndex)
	}
	out, _ := md.MarshalBinary()
	if !bytes.Equal(out, el) {
		t.Errorf("MarshalBinary = % x, want % x", out, el)
	}
}

func TestMidiEndpointDescriptor_RoundTrip(t *testing.T) {
	raw := []byte{0x06, 0x25, 0x01, 0x02, 0x01, 0x03}
	med := &MidiEndpointDescriptor{}
	if err := med.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !bytes.Equal(med.Jacks, []byte{0x01, 0x03}) {
		t.Errorf("Jacks = % x, want 01 03", med.Jacks)
	}
	out, _ := med.MarshalBinary()
	if !bytes.Equal(out, raw) {
		t.Errorf("MarshalBinary = % x, want % x", out, raw)
	}

	if err := med.UnmarshalBinary([]byte{0x06, 0x25, 0x01, 0x05, 0x01}); !errors.Is(err, ErrTruncated) {
		t.Errorf("jack count overrun err = %v, want ErrTruncated", err)
	}
}
