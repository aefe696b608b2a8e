// Package audio decodes USB Audio Class interface and endpoint
// descriptors. The three UAC revisions share entity concepts but renumber
// the bDescriptorSubtype space and change the wire layouts, so parsing is
// keyed on the interface protocol byte: each revision's subtype code is
// remapped to a canonical tag, then the revision-specific layout decodes
// the bytes after the three-byte envelope.
package audio

import (
	"encoding"

	"github.com/valerierx/cyme/pkg/descriptors"
)

// Protocol is the bInterfaceProtocol of an audio function, which selects
// the UAC revision.
type Protocol byte

const (
	ProtocolUac1 Protocol = 0x00
	ProtocolUac2 Protocol = 0x20
	ProtocolUac3 Protocol = 0x30
)

func (p Protocol) String() string {
	switch p {
	case ProtocolUac1:
		return "UAC1"
	case ProtocolUac2:
		return "UAC2"
	case ProtocolUac3:
		return "UAC3"
	default:
		return "Unknown"
	}
}

// InterfaceKind says which descriptor space a class-specific audio
// descriptor was found in; the same subtype byte means different things
// in each.
type InterfaceKind byte

const (
	// InterfaceKindControl is a class-specific interface descriptor on
	// the AudioControl interface.
	InterfaceKindControl InterfaceKind = iota
	// InterfaceKindStreaming is a class-specific interface descriptor on
	// an AudioStreaming interface.
	InterfaceKindStreaming
	// InterfaceKindStreamingEndpoint is a class-specific endpoint
	// descriptor on an AudioStreaming data endpoint.
	InterfaceKindStreamingEndpoint
)

// ControlSubtype is the canonical tag of an AudioControl entity. Values
// follow the UAC3 numbering; UAC1 and UAC2 subtype bytes are remapped to
// these before dispatch so one tag names the same entity under every
// revision.
type ControlSubtype byte

const (
	ControlSubtypeUndefined           ControlSubtype = 0x00
	ControlSubtypeHeader              ControlSubtype = 0x01
	ControlSubtypeInputTerminal       ControlSubtype = 0x02
	ControlSubtypeOutputTerminal      ControlSubtype = 0x03
	ControlSubtypeExtendedTerminal    ControlSubtype = 0x04
	ControlSubtypeMixerUnit           ControlSubtype = 0x05
	ControlSubtypeSelectorUnit        ControlSubtype = 0x06
	ControlSubtypeFeatureUnit         ControlSubtype = 0x07
	ControlSubtypeEffectUnit          ControlSubtype = 0x08
	ControlSubtypeProcessingUnit      ControlSubtype = 0x09
	ControlSubtypeExtensionUnit       ControlSubtype = 0x0a
	ControlSubtypeClockSource         ControlSubtype = 0x0b
	ControlSubtypeClockSelector       ControlSubtype = 0x0c
	ControlSubtypeClockMultiplier     ControlSubtype = 0x0d
	ControlSubtypeSampleRateConverter ControlSubtype = 0x0e
	ControlSubtypeConnectors          ControlSubtype = 0x0f
	ControlSubtypePowerDomain         ControlSubtype = 0x10
)

func (s ControlSubtype) String() string {
	switch s {
	case ControlSubtypeHeader:
		return "Header"
	case ControlSubtypeInputTerminal:
		return "Input Terminal"
	case ControlSubtypeOutputTerminal:
		return "Output Terminal"
	case ControlSubtypeExtendedTerminal:
		return "Extended Terminal"
	case ControlSubtypeMixerUnit:
		return "Mixer Unit"
	case ControlSubtypeSelectorUnit:
		return "Selector Unit"
	case ControlSubtypeFeatureUnit:
		return "Feature Unit"
	case ControlSubtypeEffectUnit:
		return "Effect Unit"
	case ControlSubtypeProcessingUnit:
		return "Processing Unit"
	case ControlSubtypeExtensionUnit:
		return "Extension Unit"
	case ControlSubtypeClockSource:
		return "Clock Source"
	case ControlSubtypeClockSelector:
		return "Clock Selector"
	case ControlSubtypeClockMultiplier:
		return "Clock Multiplier"
	case ControlSubtypeSampleRateConverter:
		return "Sample Rate Converter"
	case ControlSubtypeConnectors:
		return "Connectors"
	case ControlSubtypePowerDomain:
		return "Power Domain"
	default:
		return "Undefined"
	}
}

// DumpName is the upper-case tag used in lsusb-style dumps.
func (s ControlSubtype) DumpName() string {
	switch s {
	case ControlSubtypeHeader:
		return "HEADER"
	case ControlSubtypeInputTerminal:
		return "INPUT_TERMINAL"
	case ControlSubtypeOutputTerminal:
		return "OUTPUT_TERMINAL"
	case ControlSubtypeExtendedTerminal:
		return "EXTENDED_TERMINAL"
	case ControlSubtypeMixerUnit:
		return "MIXER_UNIT"
	case ControlSubtypeSelectorUnit:
		return "SELECTOR_UNIT"
	case ControlSubtypeFeatureUnit:
		return "FEATURE_UNIT"
	case ControlSubtypeEffectUnit:
		return "EFFECT_UNIT"
	case ControlSubtypeProcessingUnit:
		return "PROCESSING_UNIT"
	case ControlSubtypeExtensionUnit:
		return "EXTENSION_UNIT"
	case ControlSubtypeClockSource:
		return "CLOCK_SOURCE"
	case ControlSubtypeClockSelector:
		return "CLOCK_SELECTOR"
	case ControlSubtypeClockMultiplier:
		return "CLOCK_MULTIPLIER"
	case ControlSubtypeSampleRateConverter:
		return "SAMPLE_RATE_CONVERTER"
	case ControlSubtypeConnectors:
		return "CONNECTORS"
	case ControlSubtypePowerDomain:
		return "POWER_DOMAIN"
	default:
		return "unknown"
	}
}

// uac1ControlSubtypes maps UAC1 bDescriptorSubtype codes to canonical
// tags (UAC1 spec, table A-5).
var uac1ControlSubtypes = map[byte]ControlSubtype{
	0x01: ControlSubtypeHeader,
	0x02: ControlSubtypeInputTerminal,
	0x03: ControlSubtypeOutputTerminal,
	0x04: ControlSubtypeMixerUnit,
	0x05: ControlSubtypeSelectorUnit,
	0x06: ControlSubtypeFeatureUnit,
	0x07: ControlSubtypeProcessingUnit,
	0x08: ControlSubtypeExtensionUnit,
}

// uac2ControlSubtypes maps UAC2 bDescriptorSubtype codes to canonical
// tags (UAC2 spec, table A-9).
var uac2ControlSubtypes = map[byte]ControlSubtype{
	0x01: ControlSubtypeHeader,
	0x02: ControlSubtypeInputTerminal,
	0x03: ControlSubtypeOutputTerminal,
	0x04: ControlSubtypeMixerUnit,
	0x05: ControlSubtypeSelectorUnit,
	0x06: ControlSubtypeFeatureUnit,
	0x07: ControlSubtypeEffectUnit,
	0x08: ControlSubtypeProcessingUnit,
	0x09: ControlSubtypeExtensionUnit,
	0x0a: ControlSubtypeClockSource,
	0x0b: ControlSubtypeClockSelector,
	0x0c: ControlSubtypeClockMultiplier,
	0x0d: ControlSubtypeSampleRateConverter,
}

// ControlSubtypeForProtocol remaps a raw bDescriptorSubtype byte into the
// canonical tag for the given protocol. UAC3 codes are the canonical
// numbering already. Codes a revision does not define come back
// Undefined.
func ControlSubtypeForProtocol(subtype byte, protocol Protocol) ControlSubtype {
	switch protocol {
	case ProtocolUac1:
		return uac1ControlSubtypes[subtype]
	case ProtocolUac2:
		return uac2ControlSubtypes[subtype]
	case ProtocolUac3:
		if subtype <= byte(ControlSubtypePowerDomain) {
			return ControlSubtype(subtype)
		}
		return ControlSubtypeUndefined
	default:
		return ControlSubtypeUndefined
	}
}

// StreamingSubtype is the bDescriptorSubtype of an AudioStreaming
// interface descriptor. The codes agree across revisions; UAC1 alone
// defines FormatSpecific.
type StreamingSubtype byte

const (
	StreamingSubtypeUndefined      StreamingSubtype = 0x00
	StreamingSubtypeGeneral        StreamingSubtype = 0x01
	StreamingSubtypeFormatType     StreamingSubtype = 0x02
	StreamingSubtypeFormatSpecific StreamingSubtype = 0x03
)

func (s StreamingSubtype) String() string {
	switch s {
	case StreamingSubtypeGeneral:
		return "General"
	case StreamingSubtypeFormatType:
		return "Format Type"
	case StreamingSubtypeFormatSpecific:
		return "Format Specific"
	default:
		return "Undefined"
	}
}

// Entity is the decoded payload of a UAC descriptor, one implementation
// per entity per revision. Every entity marshals back to the bytes after
// the envelope.
type Entity interface {
	encoding.BinaryMarshaler
	isAudioEntity()
}

// UndefinedEntity carries the payload of a subtype the protocol does not
// define. Kept raw so the descriptor still round-trips.
type UndefinedEntity struct {
	Data []byte
}

func (e *UndefinedEntity) isAudioEntity() {}

func (e *UndefinedEntity) MarshalBinary() ([]byte, error) { return dup(e.Data), nil }

// InvalidEntity carries the payload of a recognized subtype whose layout
// failed to decode, usually a truncated entity. The error is retained for
// display alongside the raw bytes.
type InvalidEntity struct {
	Data []byte
	Err  error
}

func (e *InvalidEntity) isAudioEntity() {}

func (e *InvalidEntity) MarshalBinary() ([]byte, error) { return dup(e.Data), nil }

// UacDescriptor is one class-specific audio descriptor: the three-byte
// envelope, the canonical subtype, and the decoded entity. The raw
// subtype byte is kept so marshalling reproduces the revision's own
// numbering.
type UacDescriptor struct {
	Length         uint8
	DescriptorType uint8
	SubtypeByte    uint8
	Protocol       Protocol
	Kind           InterfaceKind
	Entity         Entity
}

// ControlSubtype is the canonical tag of the entity, derived from the raw
// subtype byte under this descriptor's protocol.
func (u *UacDescriptor) ControlSubtype() ControlSubtype {
	return ControlSubtypeForProtocol(u.SubtypeByte, u.Protocol)
}

// StreamingSubtype interprets the raw subtype byte for streaming
// interface and endpoint descriptors.
func (u *UacDescriptor) StreamingSubtype() StreamingSubtype {
	if u.SubtypeByte > byte(StreamingSubtypeFormatSpecific) {
		return StreamingSubtypeUndefined
	}
	return StreamingSubtype(u.SubtypeByte)
}

func (u *UacDescriptor) MarshalBinary() ([]byte, error) {
	data, err := u.Entity.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 3, 3+len(data))
	buf[0] = u.Length
	buf[1] = u.DescriptorType
	buf[2] = u.SubtypeByte
	return append(buf, data...), nil
}

// Parse decodes a class-specific audio descriptor found on an interface
// of the given kind and protocol. Only a buffer too short for the
// envelope, or a bLength overrunning it, is an error: an entity whose
// own layout fails to decode comes back as an InvalidEntity and an
// unrecognized subtype as an UndefinedEntity, so one bad entity never
// hides its siblings.
func Parse(kind InterfaceKind, protocol Protocol, buf []byte) (*UacDescriptor, error) {
	if len(buf) < 3 {
		return nil, truncated("audio descriptor", 3, len(buf))
	}
	if int(buf[0]) > len(buf) {
		return nil, truncated("audio descriptor", int(buf[0]), len(buf))
	}
	u := &UacDescriptor{
		Length:         buf[0],
		DescriptorType: buf[1],
		SubtypeByte:    buf[2],
		Protocol:       protocol,
		Kind:           kind,
	}
	data := buf[3:]

	entity, known := newEntity(kind, protocol, u)
	if !known {
		u.Entity = &UndefinedEntity{Data: dup(data)}
		return u, nil
	}
	if err := entity.UnmarshalBinary(data); err != nil {
		u.Entity = &InvalidEntity{Data: dup(data), Err: err}
		return u, nil
	}
	u.Entity = entity
	return u, nil
}

type entityUnmarshaler interface {
	Entity
	UnmarshalBinary([]byte) error
}

// newEntity picks the layout for the (kind, protocol, subtype) triple.
// The bool is false when no layout is defined for the combination.
func newEntity(kind InterfaceKind, protocol Protocol, u *UacDescriptor) (entityUnmarshaler, bool) {
	switch kind {
	case InterfaceKindControl:
		return newControlEntity(protocol, u.ControlSubtype())
	case InterfaceKindStreaming:
		return newStreamingEntity(protocol, u.StreamingSubtype())
	case InterfaceKindStreamingEndpoint:
		if u.StreamingSubtype() != StreamingSubtypeGeneral {
			return nil, false
		}
		switch protocol {
		case ProtocolUac1:
			return &DataStreamingEndpoint1{}, true
		case ProtocolUac2:
			return &DataStreamingEndpoint2{}, true
		case ProtocolUac3:
			return &DataStreamingEndpoint3{}, true
		}
		return nil, false
	}
	return nil, false
}

func newControlEntity(protocol Protocol, subtype ControlSubtype) (entityUnmarshaler, bool) {
	type key struct {
		s ControlSubtype
		p Protocol
	}
	switch (key{subtype, protocol}) {
	case key{ControlSubtypeHeader, ProtocolUac1}:
		return &Header1{}, true
	case key{ControlSubtypeHeader, ProtocolUac2}:
		return &Header2{}, true
	case key{ControlSubtypeHeader, ProtocolUac3}:
		return &Header3{}, true
	case key{ControlSubtypeInputTerminal, ProtocolUac1}:
		return &InputTerminal1{}, true
	case key{ControlSubtypeInputTerminal, ProtocolUac2}:
		return &InputTerminal2{}, true
	case key{ControlSubtypeInputTerminal, ProtocolUac3}:
		return &InputTerminal3{}, true
	case key{ControlSubtypeOutputTerminal, ProtocolUac1}:
		return &OutputTerminal1{}, true
	case key{ControlSubtypeOutputTerminal, ProtocolUac2}:
		return &OutputTerminal2{}, true
	case key{ControlSubtypeOutputTerminal, ProtocolUac3}:
		return &OutputTerminal3{}, true
	case key{ControlSubtypeExtendedTerminal, ProtocolUac3}:
		return &ExtendedTerminalHeader{}, true
	case key{ControlSubtypeMixerUnit, ProtocolUac1}:
		return &MixerUnit1{}, true
	case key{ControlSubtypeMixerUnit, ProtocolUac2}:
		return &MixerUnit2{}, true
	case key{ControlSubtypeMixerUnit, ProtocolUac3}:
		return &MixerUnit3{}, true
	case key{ControlSubtypeSelectorUnit, ProtocolUac1}:
		return &SelectorUnit1{}, true
	case key{ControlSubtypeSelectorUnit, ProtocolUac2}:
		return &SelectorUnit2{}, true
	case key{ControlSubtypeSelectorUnit, ProtocolUac3}:
		return &SelectorUnit3{}, true
	case key{ControlSubtypeFeatureUnit, ProtocolUac1}:
		return &FeatureUnit1{}, true
	case key{ControlSubtypeFeatureUnit, ProtocolUac2}:
		return &FeatureUnit2{}, true
	case key{ControlSubtypeFeatureUnit, ProtocolUac3}:
		return &FeatureUnit3{}, true
	case key{ControlSubtypeEffectUnit, ProtocolUac2}:
		return &EffectUnit2{}, true
	case key{ControlSubtypeEffectUnit, ProtocolUac3}:
		return &EffectUnit3{}, true
	case key{ControlSubtypeProcessingUnit, ProtocolUac1}:
		return &ProcessingUnit1{}, true
	case key{ControlSubtypeProcessingUnit, ProtocolUac2}:
		return &ProcessingUnit2{}, true
	case key{ControlSubtypeProcessingUnit, ProtocolUac3}:
		return &ProcessingUnit3{}, true
	case key{ControlSubtypeExtensionUnit, ProtocolUac1}:
		return &ExtensionUnit1{}, true
	case key{ControlSubtypeExtensionUnit, ProtocolUac2}:
		return &ExtensionUnit2{}, true
	case key{ControlSubtypeExtensionUnit, ProtocolUac3}:
		return &ExtensionUnit3{}, true
	case key{ControlSubtypeClockSource, ProtocolUac2}:
		return &ClockSource2{}, true
	case key{ControlSubtypeClockSource, ProtocolUac3}:
		return &ClockSource3{}, true
	case key{ControlSubtypeClockSelector, ProtocolUac2}:
		return &ClockSelector2{}, true
	case key{ControlSubtypeClockSelector, ProtocolUac3}:
		return &ClockSelector3{}, true
	case key{ControlSubtypeClockMultiplier, ProtocolUac2}:
		return &ClockMultiplier2{}, true
	case key{ControlSubtypeClockMultiplier, ProtocolUac3}:
		return &ClockMultiplier3{}, true
	case key{ControlSubtypeSampleRateConverter, ProtocolUac2}:
		return &SampleRateConverter2{}, true
	case key{ControlSubtypeSampleRateConverter, ProtocolUac3}:
		return &SampleRateConverter3{}, true
	case key{ControlSubtypePowerDomain, ProtocolUac3}:
		return &PowerDomain{}, true
	default:
		return nil, false
	}
}

func newStreamingEntity(protocol Protocol, subtype StreamingSubtype) (entityUnmarshaler, bool) {
	switch subtype {
	case StreamingSubtypeGeneral:
		switch protocol {
		case ProtocolUac1:
			return &StreamingInterface1{}, true
		case ProtocolUac2:
			return &StreamingInterface2{}, true
		case ProtocolUac3:
			return &StreamingInterface3{}, true
		}
	case StreamingSubtypeFormatType:
		switch protocol {
		case ProtocolUac1:
			return &FormatType1{}, true
		case ProtocolUac2:
			return &FormatType2{}, true
		}
	case StreamingSubtypeFormatSpecific:
		if protocol == ProtocolUac1 {
			return &FormatSpecific{}, true
		}
	}
	return nil, false
}

func dup(b []byte) []byte {
	d := make([]byte, len(b))
	copy(d, b)
	return d
}

func truncated(field string, need, have int) error {
	return descriptors.Truncated(field, need, have)
}
