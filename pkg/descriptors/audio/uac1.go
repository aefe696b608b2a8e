package audio

import (
	"encoding/binary"

	"github.com/valerierx/cyme/pkg/descriptors"
)

// UAC1 entity layouts (UAC1 spec, section 4.3). All offsets are relative
// to the byte after bDescriptorSubtype; the envelope lives on
// UacDescriptor. Index fields hold string descriptor indices, with an
// optional resolved string alongside.

// Header1 is the class-specific AC interface header.
type Header1 struct {
	Version       descriptors.Version
	TotalLength   uint16
	Interfaces    []uint8
	CollectionStr *string
}

func (h *Header1) isAudioEntity() {}

func (h *Header1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	bcd, err := r.U16("bcdADC")
	if err != nil {
		return err
	}
	h.Version = descriptors.FromBCD(bcd)
	if h.TotalLength, err = r.U16("wTotalLength"); err != nil {
		return err
	}
	count, err := r.U8("bInCollection")
	if err != nil {
		return err
	}
	ifaces, err := r.Bytes(int(count), "baInterfaceNr")
	if err != nil {
		return err
	}
	h.Interfaces = dup(ifaces)
	return nil
}

func (h *Header1) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 5, 5+len(h.Interfaces))
	binary.LittleEndian.PutUint16(buf[0:2], h.Version.BCD())
	binary.LittleEndian.PutUint16(buf[2:4], h.TotalLength)
	buf[4] = uint8(len(h.Interfaces))
	return append(buf, h.Interfaces...), nil
}

// InputTerminal1 describes an audio source entity.
type InputTerminal1 struct {
	TerminalID        uint8
	TerminalType      uint16
	AssocTerminal     uint8
	NrChannels        uint8
	ChannelConfig     uint16
	ChannelNamesIndex uint8
	ChannelNames      *string
	TerminalIndex     uint8
	Terminal          *string
}

func (t *InputTerminal1) isAudioEntity() {}

func (t *InputTerminal1) UnmarshalBinary(buf []byte) error {
	if len(buf) < 9 {
		return truncated("input terminal", 9, len(buf))
	}
	t.TerminalID = buf[0]
	t.TerminalType = binary.LittleEndian.Uint16(buf[1:3])
	t.AssocTerminal = buf[3]
	t.NrChannels = buf[4]
	t.ChannelConfig = binary.LittleEndian.Uint16(buf[5:7])
	t.ChannelNamesIndex = buf[7]
	t.TerminalIndex = buf[8]
	return nil
}

func (t *InputTerminal1) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 9)
	buf[0] = t.TerminalID
	binary.LittleEndian.PutUint16(buf[1:3], t.TerminalType)
	buf[3] = t.AssocTerminal
	buf[4] = t.NrChannels
	binary.LittleEndian.PutUint16(buf[5:7], t.ChannelConfig)
	buf[7] = t.ChannelNamesIndex
	buf[8] = t.TerminalIndex
	return buf, nil
}

// OutputTerminal1 describes an audio sink entity.
type OutputTerminal1 struct {
	TerminalID    uint8
	TerminalType  uint16
	AssocTerminal uint8
	SourceID      uint8
	TerminalIndex uint8
	Terminal      *string
}

func (t *OutputTerminal1) isAudioEntity() {}

func (t *OutputTerminal1) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return truncated("output terminal", 6, len(buf))
	}
	t.TerminalID = buf[0]
	t.TerminalType = binary.LittleEndian.Uint16(buf[1:3])
	t.AssocTerminal = buf[3]
	t.SourceID = buf[4]
	t.TerminalIndex = buf[5]
	return nil
}

func (t *OutputTerminal1) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 6)
	buf[0] = t.TerminalID
	binary.LittleEndian.PutUint16(buf[1:3], t.TerminalType)
	buf[3] = t.AssocTerminal
	buf[4] = t.SourceID
	buf[5] = t.TerminalIndex
	return buf, nil
}

// MixerUnit1 mixes its input pins into one output cluster. The controls
// region is a programmable-mixing bitmap whose size is whatever remains
// between the fixed fields.
type MixerUnit1 struct {
	UnitID            uint8
	NrInPins          uint8
	SourceIDs         []uint8
	NrChannels        uint8
	ChannelConfig     uint16
	ChannelNamesIndex uint8
	ChannelNames      *string
	Controls          []uint8
	MixerIndex        uint8
	Mixer             *string
}

func (m *MixerUnit1) isAudioEntity() {}

func (m *MixerUnit1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if m.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if m.NrInPins, err = r.U8("bNrInPins"); err != nil {
		return err
	}
	pins, err := r.Bytes(int(m.NrInPins), "baSourceID")
	if err != nil {
		return err
	}
	m.SourceIDs = dup(pins)
	if m.NrChannels, err = r.U8("bNrChannels"); err != nil {
		return err
	}
	if m.ChannelConfig, err = r.U16("wChannelConfig"); err != nil {
		return err
	}
	if m.ChannelNamesIndex, err = r.U8("iChannelNames"); err != nil {
		return err
	}
	controls, err := r.Bytes(r.Len()-1, "bmControls")
	if err != nil {
		return err
	}
	m.Controls = dup(controls)
	m.MixerIndex, err = r.U8("iMixer")
	return err
}

func (m *MixerUnit1) MarshalBinary() ([]byte, error) {
	buf := []byte{m.UnitID, uint8(len(m.SourceIDs))}
	buf = append(buf, m.SourceIDs...)
	buf = append(buf, m.NrChannels, 0, 0)
	binary.LittleEndian.PutUint16(buf[len(buf)-2:], m.ChannelConfig)
	buf = append(buf, m.ChannelNamesIndex)
	buf = append(buf, m.Controls...)
	return append(buf, m.MixerIndex), nil
}

// SelectorUnit1 routes one of its input pins to the output.
type SelectorUnit1 struct {
	UnitID        uint8
	NrInPins      uint8
	SourceIDs     []uint8
	SelectorIndex uint8
	Selector      *string
}

func (s *SelectorUnit1) isAudioEntity() {}

func (s *SelectorUnit1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if s.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if s.NrInPins, err = r.U8("bNrInPins"); err != nil {
		return err
	}
	pins, err := r.Bytes(int(s.NrInPins), "baSourceID")
	if err != nil {
		return err
	}
	s.SourceIDs = dup(pins)
	s.SelectorIndex, err = r.U8("iSelector")
	return err
}

func (s *SelectorUnit1) MarshalBinary() ([]byte, error) {
	buf := []byte{s.UnitID, uint8(len(s.SourceIDs))}
	buf = append(buf, s.SourceIDs...)
	return append(buf, s.SelectorIndex), nil
}

// FeatureUnit1 exposes per-channel audio controls. Controls holds the raw
// bmaControls table: ControlSize bytes per channel, master channel first,
// expandable against FeatureUnitControls1.
type FeatureUnit1 struct {
	UnitID       uint8
	SourceID     uint8
	ControlSize  uint8
	Controls     []uint8
	FeatureIndex uint8
	Feature      *string
}

func (f *FeatureUnit1) isAudioEntity() {}

func (f *FeatureUnit1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if f.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if f.SourceID, err = r.U8("bSourceID"); err != nil {
		return err
	}
	if f.ControlSize, err = r.U8("bControlSize"); err != nil {
		return err
	}
	controls, err := r.Bytes(r.Len()-1, "bmaControls")
	if err != nil {
		return err
	}
	f.Controls = dup(controls)
	f.FeatureIndex, err = r.U8("iFeature")
	return err
}

func (f *FeatureUnit1) MarshalBinary() ([]byte, error) {
	buf := []byte{f.UnitID, f.SourceID, f.ControlSize}
	buf = append(buf, f.Controls...)
	return append(buf, f.FeatureIndex), nil
}

// UpDownMix1 is the process-specific tail of an Up/Down-mix processing
// unit: the supported spatial mode set.
type UpDownMix1 struct {
	Modes []uint16
}

// ProcessingUnit1 transforms a cluster by a process named in ProcessType.
// Up/Down-mix units append a mode table after the common fields.
type ProcessingUnit1 struct {
	UnitID            uint8
	ProcessType       uint16
	NrInPins          uint8
	SourceIDs         []uint8
	NrChannels        uint8
	ChannelConfig     uint16
	ChannelNamesIndex uint8
	ChannelNames      *string
	ControlSize       uint8
	Controls          []uint8
	ProcessingIndex   uint8
	Processing        *string
	UpDownMix         *UpDownMix1
}

func (p *ProcessingUnit1) isAudioEntity() {}

func (p *ProcessingUnit1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if p.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if p.ProcessType, err = r.U16("wProcessType"); err != nil {
		return err
	}
	if p.NrInPins, err = r.U8("bNrInPins"); err != nil {
		return err
	}
	pins, err := r.Bytes(int(p.NrInPins), "baSourceID")
	if err != nil {
		return err
	}
	p.SourceIDs = dup(pins)
	if p.NrChannels, err = r.U8("bNrChannels"); err != nil {
		return err
	}
	if p.ChannelConfig, err = r.U16("wChannelConfig"); err != nil {
		return err
	}
	if p.ChannelNamesIndex, err = r.U8("iChannelNames"); err != nil {
		return err
	}
	if p.ControlSize, err = r.U8("bControlSize"); err != nil {
		return err
	}
	controls, err := r.Bytes(int(p.ControlSize), "bmControls")
	if err != nil {
		return err
	}
	p.Controls = dup(controls)
	if p.ProcessingIndex, err = r.U8("iProcessing"); err != nil {
		return err
	}
	if p.ProcessType == 0x01 && r.Len() > 0 {
		nrModes, err := r.U8("bNrModes")
		if err != nil {
			return err
		}
		mix := &UpDownMix1{Modes: make([]uint16, 0, nrModes)}
		for i := 0; i < int(nrModes); i++ {
			mode, err := r.U16("waModes")
			if err != nil {
				return err
			}
			mix.Modes = append(mix.Modes, mode)
		}
		p.UpDownMix = mix
	}
	return nil
}

func (p *ProcessingUnit1) MarshalBinary() ([]byte, error) {
	buf := []byte{p.UnitID, 0, 0}
	binary.LittleEndian.PutUint16(buf[1:3], p.ProcessType)
	buf = append(buf, uint8(len(p.SourceIDs)))
	buf = append(buf, p.SourceIDs...)
	buf = append(buf, p.NrChannels, 0, 0)
	binary.LittleEndian.PutUint16(buf[len(buf)-2:], p.ChannelConfig)
	buf = append(buf, p.ChannelNamesIndex, uint8(len(p.Controls)))
	buf = append(buf, p.Controls...)
	buf = append(buf, p.ProcessingIndex)
	if p.UpDownMix != nil {
		buf = append(buf, uint8(len(p.UpDownMix.Modes)))
		for _, mode := range p.UpDownMix.Modes {
			buf = binary.LittleEndian.AppendUint16(buf, mode)
		}
	}
	return buf, nil
}

// ExtensionUnit1 is a vendor-defined transform identified by
// ExtensionCode.
type ExtensionUnit1 struct {
	UnitID            uint8
	ExtensionCode     uint16
	NrInPins          uint8
	SourceIDs         []uint8
	NrChannels        uint8
	ChannelConfig     uint16
	ChannelNamesIndex uint8
	ChannelNames      *string
	ControlSize       uint8
	Controls          []uint8
	ExtensionIndex    uint8
	Extension         *string
}

func (e *ExtensionUnit1) isAudioEntity() {}

func (e *ExtensionUnit1) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if e.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if e.ExtensionCode, err = r.U16("wExtensionCode"); err != nil {
		return err
	}
	if e.NrInPins, err = r.U8("bNrInPins"); err != nil {
		return err
	}
	pins, err := r.Bytes(int(e.NrInPins), "baSourceID")
	if err != nil {
		return err
	}
	e.SourceIDs = dup(pins)
	if e.NrChannels, err = r.U8("bNrChannels"); err != nil {
		return err
	}
	if e.ChannelConfig, err = r.U16("wChannelConfig"); err != nil {
		return err
	}
	if e.ChannelNamesIndex, err = r.U8("iChannelNames"); err != nil {
		return err
	}
	if e.ControlSize, err = r.U8("bControlSize"); err != nil {
		return err
	}
	controls, err := r.Bytes(int(e.ControlSize), "bmControls")
	if err != nil {
		return err
	}
	e.Controls = dup(controls)
	e.ExtensionIndex, err = r.U8("iExtension")
	return err
}

func (e *ExtensionUnit1) MarshalBinary() ([]byte, error) {
	buf := []byte{e.UnitID, 0, 0}
	binary.LittleEndian.PutUint16(buf[1:3], e.ExtensionCode)
	buf = append(buf, uint8(len(e.SourceIDs)))
	buf = append(buf, e.SourceIDs...)
	buf = append(buf, e.NrChannels, 0, 0)
	binary.LittleEndian.PutUint16(buf[len(buf)-2:], e.ChannelConfig)
	buf = append(buf, e.ChannelNamesIndex, uint8(len(e.Controls)))
	buf = append(buf, e.Controls...)
	return append(buf, e.ExtensionIndex), nil
}

// StreamingInterface1 is the class-specific AS interface general
// descriptor: the linked terminal, the pipeline delay in frames, and the
// wire format tag.
type StreamingInterface1 struct {
	TerminalLink uint8
	Delay        uint8
	FormatTag    uint16
}

func (s *StreamingInterface1) isAudioEntity() {}

func (s *StreamingInterface1) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return truncated("streaming interface", 4, len(buf))
	}
	s.TerminalLink = buf[0]
	s.Delay = buf[1]
	s.FormatTag = binary.LittleEndian.Uint16(buf[2:4])
	return nil
}

func (s *StreamingInterface1) MarshalBinary() ([]byte, error) {
	buf := []byte{s.TerminalLink, s.Delay, 0, 0}
	binary.LittleEndian.PutUint16(buf[2:4], s.FormatTag)
	return buf, nil
}

// DataStreamingEndpoint1 is the class-specific AS isochronous data
// endpoint descriptor.
type DataStreamingEndpoint1 struct {
	Attributes     uint8
	LockDelayUnits uint8
	LockDelay      uint16
}

func (d *DataStreamingEndpoint1) isAudioEntity() {}

func (d *DataStreamingEndpoint1) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return truncated("streaming endpoint", 4, len(buf))
	}
	d.Attributes = buf[0]
	d.LockDelayUnits = buf[1]
	d.LockDelay = binary.LittleEndian.Uint16(buf[2:4])
	return nil
}

func (d *DataStreamingEndpoint1) MarshalBinary() ([]byte, error) {
	buf := []byte{d.Attributes, d.LockDelayUnits, 0, 0}
	binary.LittleEndian.PutUint16(buf[2:4], d.LockDelay)
	return buf, nil
}
