package audio

import (
	"encoding/binary"

	"github.com/valerierx/cyme/pkg/descriptors"
)

// UAC2 entity layouts (UAC2 spec, section 4.7). UAC2 widens channel
// configs to 32 bits, switches bmControls to 2-bit access fields and adds
// the clock entities.

// Header2 is the class-specific AC interface header.
type Header2 struct {
	Version     descriptors.Version
	Category    uint8
	TotalLength uint16
	Controls    uint8
}

func (h *Header2) isAudioEntity() {}

func (h *Header2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return truncated("interface header", 6, len(buf))
	}
	h.Version = descriptors.FromBCD(binary.LittleEndian.Uint16(buf[0:2]))
	h.Category = buf[2]
	h.TotalLength = binary.LittleEndian.Uint16(buf[3:5])
	h.Controls = buf[5]
	return nil
}

func (h *Header2) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint16(buf[0:2], h.Version.BCD())
	buf[2] = h.Category
	binary.LittleEndian.PutUint16(buf[3:5], h.TotalLength)
	buf[5] = h.Controls
	return buf, nil
}

// InputTerminal2 describes an audio source entity with its clock
// connection.
type InputTerminal2 struct {
	TerminalID        uint8
	TerminalType      uint16
	AssocTerminal     uint8
	CSourceID         uint8
	NrChannels        uint8
	ChannelConfig     uint32
	ChannelNamesIndex uint8
	ChannelNames      *string
	Controls          uint16
	TerminalIndex     uint8
	Terminal          *string
}

func (t *InputTerminal2) isAudioEntity() {}

func (t *InputTerminal2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 14 {
		return truncated("input terminal", 14, len(buf))
	}
	t.TerminalID = buf[0]
	t.TerminalType = binary.LittleEndian.Uint16(buf[1:3])
	t.AssocTerminal = buf[3]
	t.CSourceID = buf[4]
	t.NrChannels = buf[5]
	t.ChannelConfig = binary.LittleEndian.Uint32(buf[6:10])
	t.ChannelNamesIndex = buf[10]
	t.Controls = binary.LittleEndian.Uint16(buf[11:13])
	t.TerminalIndex = buf[13]
	return nil
}

func (t *InputTerminal2) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 14)
	buf[0] = t.TerminalID
	binary.LittleEndian.PutUint16(buf[1:3], t.TerminalType)
	buf[3] = t.AssocTerminal
	buf[4] = t.CSourceID
	buf[5] = t.NrChannels
	binary.LittleEndian.PutUint32(buf[6:10], t.ChannelConfig)
	buf[10] = t.ChannelNamesIndex
	binary.LittleEndian.PutUint16(buf[11:13], t.Controls)
	buf[13] = t.TerminalIndex
	return buf, nil
}

// OutputTerminal2 describes an audio sink entity.
type OutputTerminal2 struct {
	TerminalID    uint8
	TerminalType  uint16
	AssocTerminal uint8
	SourceID      uint8
	CSourceID     uint8
	Controls      uint16
	TerminalIndex uint8
	Terminal      *string
}

func (t *OutputTerminal2) isAudioEntity() {}

func (t *OutputTerminal2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 9 {
		return truncated("output terminal", 9, len(buf))
	}
	t.TerminalID = buf[0]
	t.TerminalType = binary.LittleEndian.Uint16(buf[1:3])
	t.AssocTerminal = buf[3]
	t.SourceID = buf[4]
	t.CSourceID = buf[5]
	t.Controls = binary.LittleEndian.Uint16(buf[6:8])
	t.TerminalIndex = buf[8]
	return nil
}

func (t *OutputTerminal2) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 9)
	buf[0] = t.TerminalID
	binary.LittleEndian.PutUint16(buf[1:3], t.TerminalType)
	buf[3] = t.AssocTerminal
	buf[4] = t.SourceID
	buf[5] = t.CSourceID
	binary.LittleEndian.PutUint16(buf[6:8], t.Controls)
	buf[8] = t.TerminalIndex
	return buf, nil
}

// MixerUnit2 mixes input pins into one output cluster. MixerControls is
// the programmable-mixing bitmap; Controls the unit's own 2-bit map.
type MixerUnit2 struct {
	UnitID            uint8
	NrInPins          uint8
	SourceIDs         []uint8
	NrChannels        uint8
	ChannelConfig     uint32
	ChannelNamesIndex uint8
	ChannelNames      *string
	MixerControls     []uint8
	Controls          uint8
	MixerIndex        uint8
	Mixer             *string
}

func (m *MixerUnit2) isAudioEntity() {}

func (m *MixerUnit2) UnmarshalBinary(buf []byte) error {
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
	if m.ChannelConfig, err = r.U32("bmChannelConfig"); err != nil {
		return err
	}
	if m.ChannelNamesIndex, err = r.U8("iChannelNames"); err != nil {
		return err
	}
	mixer, err := r.Bytes(r.Len()-2, "bmMixerControls")
	if err != nil {
		return err
	}
	m.MixerControls = dup(mixer)
	if m.Controls, err = r.U8("bmControls"); err != nil {
		return err
	}
	m.MixerIndex, err = r.U8("iMixer")
	return err
}

func (m *MixerUnit2) MarshalBinary() ([]byte, error) {
	buf := []byte{m.UnitID, uint8(len(m.SourceIDs))}
	buf = append(buf, m.SourceIDs...)
	buf = append(buf, m.NrChannels)
	buf = binary.LittleEndian.AppendUint32(buf, m.ChannelConfig)
	buf = append(buf, m.ChannelNamesIndex)
	buf = append(buf, m.MixerControls...)
	return append(buf, m.Controls, m.MixerIndex), nil
}

// SelectorUnit2 routes one of its input pins to the output.
type SelectorUnit2 struct {
	UnitID        uint8
	NrInPins      uint8
	SourceIDs     []uint8
	Controls      uint8
	SelectorIndex uint8
	Selector      *string
}

func (s *SelectorUnit2) isAudioEntity() {}

func (s *SelectorUnit2) UnmarshalBinary(buf []byte) error {
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
	if s.Controls, err = r.U8("bmControls"); err != nil {
		return err
	}
	s.SelectorIndex, err = r.U8("iSelector")
	return err
}

func (s *SelectorUnit2) MarshalBinary() ([]byte, error) {
	buf := []byte{s.UnitID, uint8(len(s.SourceIDs))}
	buf = append(buf, s.SourceIDs...)
	return append(buf, s.Controls, s.SelectorIndex), nil
}

// FeatureUnit2 exposes per-channel audio controls, one 32-bit 2-bit-field
// map per channel with the master channel first.
type FeatureUnit2 struct {
	UnitID       uint8
	SourceID     uint8
	Controls     []uint32
	FeatureIndex uint8
	Feature      *string
}

func (f *FeatureUnit2) isAudioEntity() {}

func (f *FeatureUnit2) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if f.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if f.SourceID, err = r.U8("bSourceID"); err != nil {
		return err
	}
	count := (r.Len() - 1) / 4
	if count < 0 {
		return truncated("bmaControls", 1, r.Len())
	}
	f.Controls = make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		c, err := r.U32("bmaControls")
		if err != nil {
			return err
		}
		f.Controls = append(f.Controls, c)
	}
	f.FeatureIndex, err = r.U8("iFeature")
	return err
}

func (f *FeatureUnit2) MarshalBinary() ([]byte, error) {
	buf := []byte{f.UnitID, f.SourceID}
	for _, c := range f.Controls {
		buf = binary.LittleEndian.AppendUint32(buf, c)
	}
	return append(buf, f.FeatureIndex), nil
}

// EffectUnit2 applies the effect named by EffectType, with one control
// map per channel.
type EffectUnit2 struct {
	UnitID      uint8
	EffectType  uint16
	SourceID    uint8
	Controls    []uint32
	EffectIndex uint8
	Effect      *string
}

func (e *EffectUnit2) isAudioEntity() {}

func (e *EffectUnit2) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if e.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if e.EffectType, err = r.U16("wEffectType"); err != nil {
		return err
	}
	if e.SourceID, err = r.U8("bSourceID"); err != nil {
		return err
	}
	count := (r.Len() - 1) / 4
	if count < 0 {
		return truncated("bmaControls", 1, r.Len())
	}
	e.Controls = make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		c, err := r.U32("bmaControls")
		if err != nil {
			return err
		}
		e.Controls = append(e.Controls, c)
	}
	e.EffectIndex, err = r.U8("iEffects")
	return err
}

func (e *EffectUnit2) MarshalBinary() ([]byte, error) {
	buf := []byte{e.UnitID, 0, 0, e.SourceID}
	binary.LittleEndian.PutUint16(buf[1:3], e.EffectType)
	for _, c := range e.Controls {
		buf = binary.LittleEndian.AppendUint32(buf, c)
	}
	return append(buf, e.EffectIndex), nil
}

// UpDownMix2 is the process-specific tail of an Up/Down-mix processing
// unit: one channel config per supported mode.
type UpDownMix2 struct {
	Modes []uint32
}

// DolbyPrologic2 is the process-specific tail of a Dolby Prologic
// processing unit.
type DolbyPrologic2 struct {
	Modes []uint32
}

// ProcessingUnit2 transforms a cluster by the process in ProcessType;
// Up/Down-mix and Dolby Prologic types append a mode table.
type ProcessingUnit2 struct {
	UnitID            uint8
	ProcessType       uint16
	NrInPins          uint8
	SourceIDs         []uint8
	NrChannels        uint8
	ChannelConfig     uint32
	ChannelNamesIndex uint8
	ChannelNames      *string
	Controls          uint16
	ProcessingIndex   uint8
	Processing        *string
	UpDownMix         *UpDownMix2
	DolbyPrologic     *DolbyPrologic2
}

func (p *ProcessingUnit2) isAudioEntity() {}

func (p *ProcessingUnit2) UnmarshalBinary(buf []byte) error {
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
	if p.ChannelConfig, err = r.U32("bmChannelConfig"); err != nil {
		return err
	}
	if p.ChannelNamesIndex, err = r.U8("iChannelNames"); err != nil {
		return err
	}
	if p.Controls, err = r.U16("bmControls"); err != nil {
		return err
	}
	if p.ProcessingIndex, err = r.U8("iProcessing"); err != nil {
		return err
	}
	if r.Len() == 0 {
		return nil
	}
	switch p.ProcessType {
	case 0x01:
		modes, err := readModeTable2(r)
		if err != nil {
			return err
		}
		p.UpDownMix = &UpDownMix2{Modes: modes}
	case 0x02:
		modes, err := readModeTable2(r)
		if err != nil {
			return err
		}
		p.DolbyPrologic = &DolbyPrologic2{Modes: modes}
	}
	return nil
}

func readModeTable2(r *descriptors.Reader) ([]uint32, error) {
	nrModes, err := r.U8("bNrModes")
	if err != nil {
		return nil, err
	}
	modes := make([]uint32, 0, nrModes)
	for i := 0; i < int(nrModes); i++ {
		mode, err := r.U32("daModes")
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func (p *ProcessingUnit2) MarshalBinary() ([]byte, error) {
	buf := []byte{p.UnitID, 0, 0}
	binary.LittleEndian.PutUint16(buf[1:3], p.ProcessType)
	buf = append(buf, uint8(len(p.SourceIDs)))
	buf = append(buf, p.SourceIDs...)
	buf = append(buf, p.NrChannels)
	buf = binary.LittleEndian.AppendUint32(buf, p.ChannelConfig)
	buf = append(buf, p.ChannelNamesIndex)
	buf = binary.LittleEndian.AppendUint16(buf, p.Controls)
	buf = append(buf, p.ProcessingIndex)
	var modes []uint32
	if p.UpDownMix != nil {
		modes = p.UpDownMix.Modes
	} else if p.DolbyPrologic != nil {
		modes = p.DolbyPrologic.Modes
	} else {
		return buf, nil
	}
	buf = append(buf, uint8(len(modes)))
	for _, mode := range modes {
		buf = binary.LittleEndian.AppendUint32(buf, mode)
	}
	return buf, nil
}

// ExtensionUnit2 is a vendor-defined transform identified by
// ExtensionCode.
type ExtensionUnit2 struct {
	UnitID            uint8
	ExtensionCode     uint16
	NrInPins          uint8
	SourceIDs         []uint8
	NrChannels        uint8
	ChannelConfig     uint32
	ChannelNamesIndex uint8
	ChannelNames      *string
	Controls          uint8
	ExtensionIndex    uint8
	Extension         *string
}

func (e *ExtensionUnit2) isAudioEntity() {}

func (e *ExtensionUnit2) UnmarshalBinary(buf []byte) error {
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
	if e.ChannelConfig, err = r.U32("bmChannelConfig"); err != nil {
		return err
	}
	if e.ChannelNamesIndex, err = r.U8("iChannelNames"); err != nil {
		return err
	}
	if e.Controls, err = r.U8("bmControls"); err != nil {
		return err
	}
	e.ExtensionIndex, err = r.U8("iExtension")
	return err
}

func (e *ExtensionUnit2) MarshalBinary() ([]byte, error) {
	buf := []byte{e.UnitID, 0, 0}
	binary.LittleEndian.PutUint16(buf[1:3], e.ExtensionCode)
	buf = append(buf, uint8(len(e.SourceIDs)))
	buf = append(buf, e.SourceIDs...)
	buf = append(buf, e.NrChannels)
	buf = binary.LittleEndian.AppendUint32(buf, e.ChannelConfig)
	return append(buf, e.ChannelNamesIndex, e.Controls, e.ExtensionIndex), nil
}

// ClockSource2 describes a sampling clock; Attributes expands against
// ClockSourceAttrs2.
type ClockSource2 struct {
	ClockID          uint8
	Attributes       uint8
	Controls         uint8
	AssocTerminal    uint8
	ClockSourceIndex uint8
	ClockSource      *string
}

func (c *ClockSource2) isAudioEntity() {}

func (c *ClockSource2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 5 {
		return truncated("clock source", 5, len(buf))
	}
	c.ClockID = buf[0]
	c.Attributes = buf[1]
	c.Controls = buf[2]
	c.AssocTerminal = buf[3]
	c.ClockSourceIndex = buf[4]
	return nil
}

func (c *ClockSource2) MarshalBinary() ([]byte, error) {
	return []byte{c.ClockID, c.Attributes, c.Controls, c.AssocTerminal, c.ClockSourceIndex}, nil
}

// ClockSelector2 routes one of several clock sources.
type ClockSelector2 struct {
	ClockID            uint8
	NrInPins           uint8
	CSourceIDs         []uint8
	Controls           uint8
	ClockSelectorIndex uint8
	ClockSelector      *string
}

func (c *ClockSelector2) isAudioEntity() {}

func (c *ClockSelector2) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if c.ClockID, err = r.U8("bClockID"); err != nil {
		return err
	}
	if c.NrInPins, err = r.U8("bNrInPins"); err != nil {
		return err
	}
	pins, err := r.Bytes(int(c.NrInPins), "baCSourceID")
	if err != nil {
		return err
	}
	c.CSourceIDs = dup(pins)
	if c.Controls, err = r.U8("bmControls"); err != nil {
		return err
	}
	c.ClockSelectorIndex, err = r.U8("iClockSelector")
	return err
}

func (c *ClockSelector2) MarshalBinary() ([]byte, error) {
	buf := []byte{c.ClockID, uint8(len(c.CSourceIDs))}
	buf = append(buf, c.CSourceIDs...)
	return append(buf, c.Controls, c.ClockSelectorIndex), nil
}

// ClockMultiplier2 derives a clock by a programmable ratio.
type ClockMultiplier2 struct {
	ClockID              uint8
	CSourceID            uint8
	Controls             uint8
	ClockMultiplierIndex uint8
	ClockMultiplier      *string
}

func (c *ClockMultiplier2) isAudioEntity() {}

func (c *ClockMultiplier2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return truncated("clock multiplier", 4, len(buf))
	}
	c.ClockID = buf[0]
	c.CSourceID = buf[1]
	c.Controls = buf[2]
	c.ClockMultiplierIndex = buf[3]
	return nil
}

func (c *ClockMultiplier2) MarshalBinary() ([]byte, error) {
	return []byte{c.ClockID, c.CSourceID, c.Controls, c.ClockMultiplierIndex}, nil
}

// SampleRateConverter2 bridges two clock domains.
type SampleRateConverter2 struct {
	UnitID       uint8
	SourceID     uint8
	CSourceInID  uint8
	CSourceOutID uint8
	SrcIndex     uint8
	Src          *string
}

func (s *SampleRateConverter2) isAudioEntity() {}

func (s *SampleRateConverter2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 5 {
		return truncated("sample rate converter", 5, len(buf))
	}
	s.UnitID = buf[0]
	s.SourceID = buf[1]
	s.CSourceInID = buf[2]
	s.CSourceOutID = buf[3]
	s.SrcIndex = buf[4]
	return nil
}

func (s *SampleRateConverter2) MarshalBinary() ([]byte, error) {
	return []byte{s.UnitID, s.SourceID, s.CSourceInID, s.CSourceOutID, s.SrcIndex}, nil
}

// StreamingInterface2 is the class-specific AS interface general
// descriptor: terminal link, format bitmap and the channel cluster.
type StreamingInterface2 struct {
	TerminalLink      uint8
	Controls          uint8
	FormatType        uint8
	Formats           uint32
	NrChannels        uint8
	ChannelConfig     uint32
	ChannelNamesIndex uint8
	ChannelNames      *string
}

func (s *StreamingInterface2) isAudioEntity() {}

func (s *StreamingInterface2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 13 {
		return truncated("streaming interface", 13, len(buf))
	}
	s.TerminalLink = buf[0]
	s.Controls = buf[1]
	s.FormatType = buf[2]
	s.Formats = binary.LittleEndian.Uint32(buf[3:7])
	s.NrChannels = buf[7]
	s.ChannelConfig = binary.LittleEndian.Uint32(buf[8:12])
	s.ChannelNamesIndex = buf[12]
	return nil
}

func (s *StreamingInterface2) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 13)
	buf[0] = s.TerminalLink
	buf[1] = s.Controls
	buf[2] = s.FormatType
	binary.LittleEndian.PutUint32(buf[3:7], s.Formats)
	buf[7] = s.NrChannels
	binary.LittleEndian.PutUint32(buf[8:12], s.ChannelConfig)
	buf[12] = s.ChannelNamesIndex
	return buf, nil
}

// DataStreamingEndpoint2 is the class-specific AS isochronous data
// endpoint descriptor.
type DataStreamingEndpoint2 struct {
	Attributes     uint8
	Controls       uint8
	LockDelayUnits uint8
	LockDelay      uint16
}

func (d *DataStreamingEndpoint2) isAudioEntity() {}

func (d *DataStreamingEndpoint2) UnmarshalBinary(buf []byte) error {
	if len(buf) < 5 {
		return truncated("streaming endpoint", 5, len(buf))
	}
	d.Attributes = buf[0]
	d.Controls = buf[1]
	d.LockDelayUnits = buf[2]
	d.LockDelay = binary.LittleEndian.Uint16(buf[3:5])
	return nil
}

func (d *DataStreamingEndpoint2) MarshalBinary() ([]byte, error) {
	buf := []byte{d.Attributes, d.Controls, d.LockDelayUnits, 0, 0}
	binary.LittleEndian.PutUint16(buf[3:5], d.LockDelay)
	return buf, nil
}
