// Package descriptors decodes binary USB descriptor blobs, as returned by a
// host controller during enumeration, into typed values suitable for
// diagnostic display. Decoding is pure: no I/O, no shared state, and a
// malformed descriptor never panics — it is classified as Junk/Unknown or
// fails with a descriptive error, leaving sibling descriptors decodable.
package descriptors

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

// DescriptorKind is the bDescriptorType byte. The Unknown and Junk values
// are internal classifications, not wire codes.
type DescriptorKind byte

const (
	KindDevice                    DescriptorKind = 0x01
	KindConfig                    DescriptorKind = 0x02
	KindString                    DescriptorKind = 0x03
	KindInterface                 DescriptorKind = 0x04
	KindEndpoint                  DescriptorKind = 0x05
	KindDeviceQualifier           DescriptorKind = 0x06
	KindOtherSpeedConfiguration   DescriptorKind = 0x07
	KindInterfacePower            DescriptorKind = 0x08
	KindOtg                       DescriptorKind = 0x09
	KindDebug                     DescriptorKind = 0x0a
	KindInterfaceAssociation      DescriptorKind = 0x0b
	KindSecurity                  DescriptorKind = 0x0c
	KindKey                       DescriptorKind = 0x0d
	KindEncrypted                 DescriptorKind = 0x0e
	KindBos                       DescriptorKind = 0x0f
	KindDeviceCapability          DescriptorKind = 0x10
	KindWirelessEndpointCompanion DescriptorKind = 0x11
	KindWireAdaptor               DescriptorKind = 0x21
	KindReport                    DescriptorKind = 0x22
	KindPhysical                  DescriptorKind = 0x23
	KindPipe                      DescriptorKind = 0x24
	KindHub                       DescriptorKind = 0x29
	KindSuperSpeedHub             DescriptorKind = 0x2a
	KindSsEndpointCompanion       DescriptorKind = 0x30
	KindSsIsocEndpointCompanion   DescriptorKind = 0x31
	KindUnknown                   DescriptorKind = 0xfe
	KindJunk                      DescriptorKind = 0xff
)

// Descriptor is any parsed top-level descriptor. Every implementation also
// marshals back to its original wire form.
type Descriptor interface {
	encoding.BinaryMarshaler
	Kind() DescriptorKind
}

// Parse decodes one descriptor from buf, dispatching on bDescriptorType.
// A bLength below 2 classifies as Junk; an unrecognized type code decodes
// to Unknown with the raw bytes retained. Only a buffer too short to hold
// the two envelope bytes is an outright error.
func Parse(buf []byte) (Descriptor, error) {
	if len(buf) < 2 {
		return nil, fmt.Errorf("%w: descriptor needs at least 2 bytes, got %d", ErrInvalidDescriptor, len(buf))
	}

	// junk length
	if buf[0] < 2 {
		return &JunkDescriptor{Data: dup(buf)}, nil
	}

	switch DescriptorKind(buf[1]) {
	case KindDevice, KindConfig, KindInterface, KindEndpoint:
		gd, err := ParseClass(buf)
		if err != nil {
			return nil, err
		}
		return &ClassSpecific{Type: DescriptorKind(buf[1]), Class: gd}, nil
	case KindString:
		return StringDescriptor(buf), nil
	case KindInterfaceAssociation:
		iad := &InterfaceAssociationDescriptor{}
		return iad, iad.UnmarshalBinary(buf)
	case KindSecurity:
		sd := &SecurityDescriptor{}
		return sd, sd.UnmarshalBinary(buf)
	case KindEncrypted:
		ed := &EncryptionDescriptor{}
		return ed, ed.UnmarshalBinary(buf)
	case KindReport:
		hrd := &HidReportDescriptor{}
		return hrd, hrd.UnmarshalBinary(buf)
	case KindSsEndpointCompanion:
		ssc := &SsEndpointCompanionDescriptor{}
		return ssc, ssc.UnmarshalBinary(buf)
	case KindDeviceQualifier, KindOtherSpeedConfiguration, KindInterfacePower,
		KindOtg, KindDebug, KindKey, KindBos, KindDeviceCapability,
		KindWirelessEndpointCompanion, KindWireAdaptor, KindPhysical,
		KindPipe, KindHub, KindSuperSpeedHub, KindSsIsocEndpointCompanion:
		return &UndecodedDescriptor{Type: DescriptorKind(buf[1]), Data: dup(buf)}, nil
	default:
		return &UnknownDescriptor{Data: dup(buf)}, nil
	}
}

func dup(b []byte) []byte {
	d := make([]byte, len(b))
	copy(d, b)
	return d
}

// JunkDescriptor carries bytes whose declared length is below the 2-byte
// envelope minimum: device noise kept verbatim for display.
type JunkDescriptor struct {
	Data []byte
}

func (d *JunkDescriptor) Kind() DescriptorKind { return KindJunk }

func (d *JunkDescriptor) MarshalBinary() ([]byte, error) { return dup(d.Data), nil }

// UnknownDescriptor carries a descriptor with an unrecognized type code.
type UnknownDescriptor struct {
	Data []byte
}

func (d *UnknownDescriptor) Kind() DescriptorKind { return KindUnknown }

func (d *UnknownDescriptor) MarshalBinary() ([]byte, error) { return dup(d.Data), nil }

// UndecodedDescriptor is a recognized type with no structured decode; the
// raw bytes are retained so nothing a device sent is dropped.
type UndecodedDescriptor struct {
	Type DescriptorKind
	Data []byte
}

func (d *UndecodedDescriptor) Kind() DescriptorKind { return d.Type }

func (d *UndecodedDescriptor) MarshalBinary() ([]byte, error) { return dup(d.Data), nil }

// StringDescriptor holds the raw string descriptor bytes.
type StringDescriptor string

func (StringDescriptor) Kind() DescriptorKind { return KindString }

func (d StringDescriptor) MarshalBinary() ([]byte, error) { return []byte(d), nil }

// InterfaceAssociationDescriptor groups a run of interfaces into one
// device function (USB 3.0 spec 9.6.4).
type InterfaceAssociationDescriptor struct {
	Length              uint8
	DescriptorType      uint8
	FirstInterface      uint8
	InterfaceCount      uint8
	FunctionClass       uint8
	FunctionSubClass    uint8
	FunctionProtocol    uint8
	FunctionStringIndex uint8
	FunctionString      *string
}

func (iad *InterfaceAssociationDescriptor) Kind() DescriptorKind { return KindInterfaceAssociation }

func (iad *InterfaceAssociationDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return truncated("interface association descriptor", 8, len(buf))
	}
	iad.Length = buf[0]
	iad.DescriptorType = buf[1]
	iad.FirstInterface = buf[2]
	iad.InterfaceCount = buf[3]
	iad.FunctionClass = buf[4]
	iad.FunctionSubClass = buf[5]
	iad.FunctionProtocol = buf[6]
	iad.FunctionStringIndex = buf[7]
	return nil
}

func (iad *InterfaceAssociationDescriptor) MarshalBinary() ([]byte, error) {
	return []byte{
		iad.Length, iad.DescriptorType, iad.FirstInterface, iad.InterfaceCount,
		iad.FunctionClass, iad.FunctionSubClass, iad.FunctionProtocol, iad.FunctionStringIndex,
	}, nil
}

// SecurityDescriptor (Wireless USB spec 7.4.5).
type SecurityDescriptor struct {
	Length          uint8
	DescriptorType  uint8
	TotalLength     uint16
	EncryptionTypes uint8
}

func (sd *SecurityDescriptor) Kind() DescriptorKind { return KindSecurity }

func (sd *SecurityDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 5 {
		return truncated("security descriptor", 5, len(buf))
	}
	sd.Length = buf[0]
	sd.DescriptorType = buf[1]
	sd.TotalLength = binary.LittleEndian.Uint16(buf[2:4])
	sd.EncryptionTypes = buf[4]
	return nil
}

func (sd *SecurityDescriptor) MarshalBinary() ([]byte, error) {
	buf := []byte{sd.Length, sd.DescriptorType, 0, 0, sd.EncryptionTypes}
	binary.LittleEndian.PutUint16(buf[2:4], sd.TotalLength)
	return buf, nil
}

// EncryptionDescriptor (Wireless USB spec 7.4.1).
type EncryptionDescriptor struct {
	Length          uint8
	DescriptorType  uint8
	EncryptionType  EncryptionType
	EncryptionValue uint8
	AuthKeyIndex    uint8
}

func (ed *EncryptionDescriptor) Kind() DescriptorKind { return KindEncrypted }

func (ed *EncryptionDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 5 {
		return truncated("encryption descriptor", 5, len(buf))
	}
	ed.Length = buf[0]
	ed.DescriptorType = buf[1]
	ed.EncryptionType = EncryptionTypeFromByte(buf[2])
	ed.EncryptionValue = buf[3]
	ed.AuthKeyIndex = buf[4]
	return nil
}

func (ed *EncryptionDescriptor) MarshalBinary() ([]byte, error) {
	return []byte{ed.Length, ed.DescriptorType, byte(ed.EncryptionType), ed.EncryptionValue, ed.AuthKeyIndex}, nil
}

// SsEndpointCompanionDescriptor (USB 3.2 spec 9.6.7).
type SsEndpointCompanionDescriptor struct {
	Length           uint8
	DescriptorType   uint8
	MaxBurst         uint8
	Attributes       uint8
	BytesPerInterval uint16
}

func (ssc *SsEndpointCompanionDescriptor) Kind() DescriptorKind { return KindSsEndpointCompanion }

func (ssc *SsEndpointCompanionDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return truncated("SS endpoint companion descriptor", 6, len(buf))
	}
	ssc.Length = buf[0]
	ssc.DescriptorType = buf[1]
	ssc.MaxBurst = buf[2]
	ssc.Attributes = buf[3]
	ssc.BytesPerInterval = binary.LittleEndian.Uint16(buf[4:6])
	return nil
}

func (ssc *SsEndpointCompanionDescriptor) MarshalBinary() ([]byte, error) {
	buf := []byte{ssc.Length, ssc.DescriptorType, ssc.MaxBurst, ssc.Attributes, 0, 0}
	binary.LittleEndian.PutUint16(buf[4:6], ssc.BytesPerInterval)
	return buf, nil
}

// HidReportDescriptor is the report envelope nested inside a HID
// descriptor: a wLength instead of a bLength, and no subtype.
type HidReportDescriptor struct {
	DescriptorType uint8
	Length         uint16
	Data           []byte
}

func (hrd *HidReportDescriptor) Kind() DescriptorKind { return KindReport }

func (hrd *HidReportDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 3 {
		return truncated("HID report descriptor", 3, len(buf))
	}
	if buf[0] != byte(KindReport) {
		return fmt.Errorf("%w: HID report descriptor must have type 0x22, got 0x%02x", ErrInvalidDescriptor, buf[0])
	}
	hrd.DescriptorType = buf[0]
	hrd.Length = binary.LittleEndian.Uint16(buf[1:3])
	hrd.Data = dup(buf[3:])
	return nil
}

func (hrd *HidReportDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3, 3+len(hrd.Data))
	buf[0] = hrd.DescriptorType
	binary.LittleEndian.PutUint16(buf[1:3], hrd.Length)
	return append(buf, hrd.Data...), nil
}
