package descriptors

import (
	"encoding"
	"fmt"
)

// ClassDescriptor is a class-specific descriptor in either its generic or
// specialized form. Values are immutable once constructed; specialization
// produces a new value rather than rewriting the generic one.
type ClassDescriptor interface {
	encoding.BinaryMarshaler
	isClassDescriptor()
}

// GenericDescriptor is the universal class-descriptor envelope:
// bLength, bDescriptorType, bDescriptorSubtype and an opaque tail. It is
// what every class descriptor parses to before the enclosing interface's
// class triplet is known, and what specialized decoders re-parse.
type GenericDescriptor struct {
	Length            uint8
	DescriptorType    uint8
	DescriptorSubtype uint8
	Data              []byte

	// Triplet records the class context once applied, for descriptors
	// that stay generic. Nil until then.
	Triplet *ClassCodeTriplet
}

func (gd *GenericDescriptor) isClassDescriptor() {}

// ParseClass decodes the generic envelope. The declared bLength must not
// exceed the bytes supplied.
func ParseClass(buf []byte) (*GenericDescriptor, error) {
	gd := &GenericDescriptor{}
	return gd, gd.UnmarshalBinary(buf)
}

func (gd *GenericDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 3 {
		return truncated("class descriptor", 3, len(buf))
	}
	if int(buf[0]) > len(buf) {
		return fmt.Errorf("%w: generic descriptor declares %d bytes, %d available", ErrInvalidDescriptor, buf[0], len(buf))
	}
	gd.Length = buf[0]
	gd.DescriptorType = buf[1]
	gd.DescriptorSubtype = buf[2]
	gd.Data = dup(buf[3:])
	return nil
}

func (gd *GenericDescriptor) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3, 3+len(gd.Data))
	buf[0] = gd.Length
	buf[1] = gd.DescriptorType
	buf[2] = gd.DescriptorSubtype
	return append(buf, gd.Data...), nil
}

// ExpectedDataLength is the tail size implied by bLength.
func (gd *GenericDescriptor) ExpectedDataLength() int {
	if gd.Length < 3 {
		return 0
	}
	return int(gd.Length) - 3
}

// Specialize re-interprets the generic descriptor under the enclosing
// interface's class triplet and returns the specialized form. Triplets
// with no specialized decoder return a new GenericDescriptor tagged with
// the triplet for diagnostic display. The receiver is not modified.
func (gd *GenericDescriptor) Specialize(t ClassCodeTriplet) (ClassDescriptor, error) {
	raw, _ := gd.MarshalBinary()

	switch {
	case t.Class == ClassCodeHID:
		hd := &HidDescriptor{}
		return hd, hd.UnmarshalBinary(raw)
	case t.Class == ClassCodeSmartCard:
		cd := &CcidDescriptor{}
		return cd, cd.UnmarshalBinary(raw)
	case t.Class == ClassCodePrinter:
		pd := &PrinterDescriptor{}
		return pd, pd.UnmarshalBinary(raw)
	case t.Class == ClassCodeCDCCommunications || t.Class == ClassCodeCDCData:
		cd := &CommunicationDescriptor{}
		return cd, cd.UnmarshalBinary(raw)
	case t.Class == ClassCodeAudio && t.SubClass == 3:
		md := &MidiDescriptor{Protocol: t.Protocol}
		return md, md.UnmarshalBinary(raw)
	case t.Class == ClassCodeVideo && t.SubClass == 1:
		vd := &UvcDescriptor{Protocol: t.Protocol}
		return vd, vd.UnmarshalBinary(raw)
	default:
		tagged := *gd
		tagged.Data = dup(gd.Data)
		tagged.Triplet = &t
		return &tagged, nil
	}
}

// ClassSpecific is a device/config/interface/endpoint-typed blob from a
// descriptor "extra" region, holding a class descriptor that starts out
// generic and becomes specialized once class context arrives.
type ClassSpecific struct {
	Type  DescriptorKind
	Class ClassDescriptor
}

func (cs *ClassSpecific) Kind() DescriptorKind { return cs.Type }

func (cs *ClassSpecific) MarshalBinary() ([]byte, error) {
	return cs.Class.MarshalBinary()
}

// ApplyContext specializes the held descriptor with the interface class
// triplet. Applying context to an already specialized descriptor, or one
// already tagged with a triplet, is a silent no-op: the transform is
// one-way. A failed specialization leaves the generic form intact and
// reports the error; the caller may continue with sibling descriptors.
func (cs *ClassSpecific) ApplyContext(t ClassCodeTriplet) error {
	gd, ok := cs.Class.(*GenericDescriptor)
	if !ok || gd.Triplet != nil {
		return nil
	}
	specialized, err := gd.Specialize(t)
	if err != nil {
		return err
	}
	cs.Class = specialized
	return nil
}
