package audio

import (
	"encoding/binary"

	"github.com/valerierx/cyme/pkg/descriptors"
)

// UAC3 entity layouts (UAC3 spec, section 4.5). UAC3 drops inline
// strings and channel clusters in favour of class-specific string and
// cluster descriptors referenced by wDescrStr/wClusterDescrID IDs, and
// widens bmControls to 32 bits throughout.

// Header3 is the class-specific AC interface header.
type Header3 struct {
	Category    uint8
	TotalLength uint16
	Controls    uint32
}

func (h *Header3) isAudioEntity() {}

func (h *Header3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 7 {
		return truncated("interface header", 7, len(buf))
	}
	h.Category = buf[0]
	h.TotalLength = binary.LittleEndian.Uint16(buf[1:3])
	h.Controls = binary.LittleEndian.Uint32(buf[3:7])
	return nil
}

func (h *Header3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 7)
	buf[0] = h.Category
	binary.LittleEndian.PutUint16(buf[1:3], h.TotalLength)
	binary.LittleEndian.PutUint32(buf[3:7], h.Controls)
	return buf, nil
}

// InputTerminal3 describes an audio source entity.
type InputTerminal3 struct {
	TerminalID        uint8
	TerminalType      uint16
	AssocTerminal     uint8
	CSourceID         uint8
	Controls          uint32
	ClusterDescrID    uint16
	ExTerminalDescrID uint16
	ConnectorsDescrID uint16
	TerminalDescrStr  uint16
}

func (t *InputTerminal3) isAudioEntity() {}

func (t *InputTerminal3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 17 {
		return truncated("input terminal", 17, len(buf))
	}
	le := binary.LittleEndian
	t.TerminalID = buf[0]
	t.TerminalType = le.Uint16(buf[1:3])
	t.AssocTerminal = buf[3]
	t.CSourceID = buf[4]
	t.Controls = le.Uint32(buf[5:9])
	t.ClusterDescrID = le.Uint16(buf[9:11])
	t.ExTerminalDescrID = le.Uint16(buf[11:13])
	t.ConnectorsDescrID = le.Uint16(buf[13:15])
	t.TerminalDescrStr = le.Uint16(buf[15:17])
	return nil
}

func (t *InputTerminal3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 17)
	le := binary.LittleEndian
	buf[0] = t.TerminalID
	le.PutUint16(buf[1:3], t.TerminalType)
	buf[3] = t.AssocTerminal
	buf[4] = t.CSourceID
	le.PutUint32(buf[5:9], t.Controls)
	le.PutUint16(buf[9:11], t.ClusterDescrID)
	le.PutUint16(buf[11:13], t.ExTerminalDescrID)
	le.PutUint16(buf[13:15], t.ConnectorsDescrID)
	le.PutUint16(buf[15:17], t.TerminalDescrStr)
	return buf, nil
}

// OutputTerminal3 describes an audio sink entity.
type OutputTerminal3 struct {
	TerminalID        uint8
	TerminalType      uint16
	AssocTerminal     uint8
	CSourceID         uint8
	Controls          uint32
	ExTerminalDescrID uint16
	ConnectorsDescrID uint16
	TerminalDescrStr  uint16
}

func (t *OutputTerminal3) isAudioEntity() {}

func (t *OutputTerminal3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 15 {
		return truncated("output terminal", 15, len(buf))
	}
	le := binary.LittleEndian
	t.TerminalID = buf[0]
	t.TerminalType = le.Uint16(buf[1:3])
	t.AssocTerminal = buf[3]
	t.CSourceID = buf[4]
	t.Controls = le.Uint32(buf[5:9])
	t.ExTerminalDescrID = le.Uint16(buf[9:11])
	t.ConnectorsDescrID = le.Uint16(buf[11:13])
	t.TerminalDescrStr = le.Uint16(buf[13:15])
	return nil
}

func (t *OutputTerminal3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 15)
	le := binary.LittleEndian
	buf[0] = t.TerminalID
	le.PutUint16(buf[1:3], t.TerminalType)
	buf[3] = t.AssocTerminal
	buf[4] = t.CSourceID
	le.PutUint32(buf[5:9], t.Controls)
	le.PutUint16(buf[9:11], t.ExTerminalDescrID)
	le.PutUint16(buf[11:13], t.ConnectorsDescrID)
	le.PutUint16(buf[13:15], t.TerminalDescrStr)
	return buf, nil
}

// ExtendedTerminalHeader heads an extended terminal descriptor block.
type ExtendedTerminalHeader struct {
	DescriptorID uint16
	NrChannels   uint8
}

func (h *ExtendedTerminalHeader) isAudioEntity() {}

func (h *ExtendedTerminalHeader) UnmarshalBinary(buf []byte) error {
	if len(buf) < 3 {
		return truncated("extended terminal header", 3, len(buf))
	}
	h.DescriptorID = binary.LittleEndian.Uint16(buf[0:2])
	h.NrChannels = buf[2]
	return nil
}

func (h *ExtendedTerminalHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 3)
	binary.LittleEndian.PutUint16(buf[0:2], h.DescriptorID)
	buf[2] = h.NrChannels
	return buf, nil
}

// MixerUnit3 mixes input pins into the cluster named by ClusterDescrID.
type MixerUnit3 struct {
	UnitID         uint8
	NrInPins       uint8
	SourceIDs      []uint8
	ClusterDescrID uint16
	MixerControls  []uint8
	Controls       uint32
	MixerDescrStr  uint16
}

func (m *MixerUnit3) isAudioEntity() {}

func (m *MixerUnit3) UnmarshalBinary(buf []byte) error {
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
	if m.ClusterDescrID, err = r.U16("wClusterDescrID"); err != nil {
		return err
	}
	mixer, err := r.Bytes(r.Len()-6, "bmMixerControls")
	if err != nil {
		return err
	}
	m.MixerControls = dup(mixer)
	if m.Controls, err = r.U32("bmControls"); err != nil {
		return err
	}
	m.MixerDescrStr, err = r.U16("wMixerDescrStr")
	return err
}

func (m *MixerUnit3) MarshalBinary() ([]byte, error) {
	buf := []byte{m.UnitID, uint8(len(m.SourceIDs))}
	buf = append(buf, m.SourceIDs...)
	buf = binary.LittleEndian.AppendUint16(buf, m.ClusterDescrID)
	buf = append(buf, m.MixerControls...)
	buf = binary.LittleEndian.AppendUint32(buf, m.Controls)
	return binary.LittleEndian.AppendUint16(buf, m.MixerDescrStr), nil
}

// SelectorUnit3 routes one of its input pins to the output.
type SelectorUnit3 struct {
	UnitID           uint8
	NrInPins         uint8
	SourceIDs        []uint8
	Controls         uint32
	SelectorDescrStr uint16
}

func (s *SelectorUnit3) isAudioEntity() {}

func (s *SelectorUnit3) UnmarshalBinary(buf []byte) error {
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
	if s.Controls, err = r.U32("bmControls"); err != nil {
		return err
	}
	s.SelectorDescrStr, err = r.U16("wSelectorDescrStr")
	return err
}

func (s *SelectorUnit3) MarshalBinary() ([]byte, error) {
	buf := []byte{s.UnitID, uint8(len(s.SourceIDs))}
	buf = append(buf, s.SourceIDs...)
	buf = binary.LittleEndian.AppendUint32(buf, s.Controls)
	return binary.LittleEndian.AppendUint16(buf, s.SelectorDescrStr), nil
}

// FeatureUnit3 exposes per-channel audio controls.
type FeatureUnit3 struct {
	UnitID          uint8
	SourceID        uint8
	Controls        []uint32
	FeatureDescrStr uint16
}

func (f *FeatureUnit3) isAudioEntity() {}

func (f *FeatureUnit3) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if f.UnitID, err = r.U8("bUnitID"); err != nil {
		return err
	}
	if f.SourceID, err = r.U8("bSourceID"); err != nil {
		return err
	}
	count := (r.Len() - 2) / 4
	if count < 0 {
		return truncated("bmaControls", 2, r.Len())
	}
	f.Controls = make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		c, err := r.U32("bmaControls")
		if err != nil {
			return err
		}
		f.Controls = append(f.Controls, c)
	}
	f.FeatureDescrStr, err = r.U16("wFeatureDescrStr")
	return err
}

func (f *FeatureUnit3) MarshalBinary() ([]byte, error) {
	buf := []byte{f.UnitID, f.SourceID}
	for _, c := range f.Controls {
		buf = binary.LittleEndian.AppendUint32(buf, c)
	}
	return binary.LittleEndian.AppendUint16(buf, f.FeatureDescrStr), nil
}

// EffectUnit3 applies the effect named by EffectType.
type EffectUnit3 struct {
	UnitID         uint8
	EffectType     uint16
	SourceID       uint8
	Controls       []uint32
	EffectDescrStr uint16
}

func (e *EffectUnit3) isAudioEntity() {}

func (e *EffectUnit3) UnmarshalBinary(buf []byte) error {
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
	count := (r.Len() - 2) / 4
	if count < 0 {
		return truncated("bmaControls", 2, r.Len())
	}
	e.Controls = make([]uint32, 0, count)
	for i := 0; i < count; i++ {
		c, err := r.U32("bmaControls")
		if err != nil {
			return err
		}
		e.Controls = append(e.Controls, c)
	}
	e.EffectDescrStr, err = r.U16("wEffectsDescrStr")
	return err
}

func (e *EffectUnit3) MarshalBinary() ([]byte, error) {
	buf := []byte{e.UnitID, 0, 0, e.SourceID}
	binary.LittleEndian.PutUint16(buf[1:3], e.EffectType)
	for _, c := range e.Controls {
		buf = binary.LittleEndian.AppendUint32(buf, c)
	}
	return binary.LittleEndian.AppendUint16(buf, e.EffectDescrStr), nil
}

// UpDownMix3 is the process-specific tail of an Up/Down-mix processing
// unit: one output cluster per supported mode.
type UpDownMix3 struct {
	Controls        uint32
	ClusterDescrIDs []uint16
}

// StereoExtender3 is the process-specific tail of a stereo extender
// processing unit.
type StereoExtender3 struct {
	Controls uint32
}

// MultiFunction3 is the process-specific tail of a multi-function
// processing unit; Algorithms expands against MultiFunctionAlgorithms3.
type MultiFunction3 struct {
	Controls       uint32
	ClusterDescrID uint16
	Algorithms     uint32
}

// ProcessingUnit3 transforms a cluster by the process in ProcessType,
// with a process-specific tail per type.
type ProcessingUnit3 struct {
	UnitID             uint8
	ProcessType        uint16
	NrInPins           uint8
	SourceIDs          []uint8
	ProcessingDescrStr uint16
	UpDownMix          *UpDownMix3
	StereoExtender     *StereoExtender3
	MultiFunction      *MultiFunction3
}

func (p *ProcessingUnit3) isAudioEntity() {}

func (p *ProcessingUnit3) UnmarshalBinary(buf []byte) error {
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
	if p.ProcessingDescrStr, err = r.U16("wProcessingDescrStr"); err != nil {
		return err
	}
	switch p.ProcessType {
	case 0x01:
		mix := &UpDownMix3{}
		if mix.Controls, err = r.U32("bmControls"); err != nil {
			return err
		}
		nrModes, err := r.U8("bNrModes")
		if err != nil {
			return err
		}
		mix.ClusterDescrIDs = make([]uint16, 0, nrModes)
		for i := 0; i < int(nrModes); i++ {
			id, err := r.U16("waClusterDescrID")
			if err != nil {
				return err
			}
			mix.ClusterDescrIDs = append(mix.ClusterDescrIDs, id)
		}
		p.UpDownMix = mix
	case 0x02:
		ext := &StereoExtender3{}
		if ext.Controls, err = r.U32("bmControls"); err != nil {
			return err
		}
		p.StereoExtender = ext
	case 0x03:
		mf := &MultiFunction3{}
		if mf.Controls, err = r.U32("bmControls"); err != nil {
			return err
		}
		if mf.ClusterDescrID, err = r.U16("wClusterDescrID"); err != nil {
			return err
		}
		if mf.Algorithms, err = r.U32("bmAlgorithms"); err != nil {
			return err
		}
		p.MultiFunction = mf
	}
	return nil
}

func (p *ProcessingUnit3) MarshalBinary() ([]byte, error) {
	buf := []byte{p.UnitID, 0, 0}
	binary.LittleEndian.PutUint16(buf[1:3], p.ProcessType)
	buf = append(buf, uint8(len(p.SourceIDs)))
	buf = append(buf, p.SourceIDs...)
	buf = binary.LittleEndian.AppendUint16(buf, p.ProcessingDescrStr)
	switch {
	case p.UpDownMix != nil:
		buf = binary.LittleEndian.AppendUint32(buf, p.UpDownMix.Controls)
		buf = append(buf, uint8(len(p.UpDownMix.ClusterDescrIDs)))
		for _, id := range p.UpDownMix.ClusterDescrIDs {
			buf = binary.LittleEndian.AppendUint16(buf, id)
		}
	case p.StereoExtender != nil:
		buf = binary.LittleEndian.AppendUint32(buf, p.StereoExtender.Controls)
	case p.MultiFunction != nil:
		buf = binary.LittleEndian.AppendUint32(buf, p.MultiFunction.Controls)
		buf = binary.LittleEndian.AppendUint16(buf, p.MultiFunction.ClusterDescrID)
		buf = binary.LittleEndian.AppendUint32(buf, p.MultiFunction.Algorithms)
	}
	return buf, nil
}

// ExtensionUnit3 is a vendor-defined transform identified by
// ExtensionCode.
type ExtensionUnit3 struct {
	UnitID            uint8
	ExtensionCode     uint16
	NrInPins          uint8
	SourceIDs         []uint8
	ExtensionDescrStr uint16
	Controls          uint32
	ClusterDescrID    uint16
}

func (e *ExtensionUnit3) isAudioEntity() {}

func (e *ExtensionUnit3) UnmarshalBinary(buf []byte) error {
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
	if e.ExtensionDescrStr, err = r.U16("wExtensionDescrStr"); err != nil {
		return err
	}
	if e.Controls, err = r.U32("bmControls"); err != nil {
		return err
	}
	e.ClusterDescrID, err = r.U16("wClusterDescrID")
	return err
}

func (e *ExtensionUnit3) MarshalBinary() ([]byte, error) {
	buf := []byte{e.UnitID, 0, 0}
	binary.LittleEndian.PutUint16(buf[1:3], e.ExtensionCode)
	buf = append(buf, uint8(len(e.SourceIDs)))
	buf = append(buf, e.SourceIDs...)
	buf = binary.LittleEndian.AppendUint16(buf, e.ExtensionDescrStr)
	buf = binary.LittleEndian.AppendUint32(buf, e.Controls)
	return binary.LittleEndian.AppendUint16(buf, e.ClusterDescrID), nil
}

// ClockSource3 describes a sampling clock; Attributes expands against
// ClockSourceAttrs3.
type ClockSource3 struct {
	ClockID           uint8
	Attributes        uint8
	Controls          uint32
	ReferenceTerminal uint8
	ClockSourceStr    uint16
}

func (c *ClockSource3) isAudioEntity() {}

func (c *ClockSource3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 9 {
		return truncated("clock source", 9, len(buf))
	}
	c.ClockID = buf[0]
	c.Attributes = buf[1]
	c.Controls = binary.LittleEndian.Uint32(buf[2:6])
	c.ReferenceTerminal = buf[6]
	c.ClockSourceStr = binary.LittleEndian.Uint16(buf[7:9])
	return nil
}

func (c *ClockSource3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 9)
	buf[0] = c.ClockID
	buf[1] = c.Attributes
	binary.LittleEndian.PutUint32(buf[2:6], c.Controls)
	buf[6] = c.ReferenceTerminal
	binary.LittleEndian.PutUint16(buf[7:9], c.ClockSourceStr)
	return buf, nil
}

// ClockSelector3 routes one of several clock sources.
type ClockSelector3 struct {
	ClockID           uint8
	NrInPins          uint8
	CSourceIDs        []uint8
	Controls          uint32
	CSelectorDescrStr uint16
}

func (c *ClockSelector3) isAudioEntity() {}

func (c *ClockSelector3) UnmarshalBinary(buf []byte) error {
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
	if c.Controls, err = r.U32("bmControls"); err != nil {
		return err
	}
	c.CSelectorDescrStr, err = r.U16("wCSelectorDescrStr")
	return err
}

func (c *ClockSelector3) MarshalBinary() ([]byte, error) {
	buf := []byte{c.ClockID, uint8(len(c.CSourceIDs))}
	buf = append(buf, c.CSourceIDs...)
	buf = binary.LittleEndian.AppendUint32(buf, c.Controls)
	return binary.LittleEndian.AppendUint16(buf, c.CSelectorDescrStr), nil
}

// ClockMultiplier3 derives a clock by a programmable ratio.
type ClockMultiplier3 struct {
	ClockID             uint8
	CSourceID           uint8
	Controls            uint32
	CMultiplierDescrStr uint16
}

func (c *ClockMultiplier3) isAudioEntity() {}

func (c *ClockMultiplier3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return truncated("clock multiplier", 8, len(buf))
	}
	c.ClockID = buf[0]
	c.CSourceID = buf[1]
	c.Controls = binary.LittleEndian.Uint32(buf[2:6])
	c.CMultiplierDescrStr = binary.LittleEndian.Uint16(buf[6:8])
	return nil
}

func (c *ClockMultiplier3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8)
	buf[0] = c.ClockID
	buf[1] = c.CSourceID
	binary.LittleEndian.PutUint32(buf[2:6], c.Controls)
	binary.LittleEndian.PutUint16(buf[6:8], c.CMultiplierDescrStr)
	return buf, nil
}

// SampleRateConverter3 bridges two clock domains.
type SampleRateConverter3 struct {
	UnitID       uint8
	SourceID     uint8
	CSourceInID  uint8
	CSourceOutID uint8
	SrcDescrStr  uint16
}

func (s *SampleRateConverter3) isAudioEntity() {}

func (s *SampleRateConverter3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return truncated("sample rate converter", 6, len(buf))
	}
	s.UnitID = buf[0]
	s.SourceID = buf[1]
	s.CSourceInID = buf[2]
	s.CSourceOutID = buf[3]
	s.SrcDescrStr = binary.LittleEndian.Uint16(buf[4:6])
	return nil
}

func (s *SampleRateConverter3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 6)
	buf[0] = s.UnitID
	buf[1] = s.SourceID
	buf[2] = s.CSourceInID
	buf[3] = s.CSourceOutID
	binary.LittleEndian.PutUint16(buf[4:6], s.SrcDescrStr)
	return buf, nil
}

// PowerDomain groups entities that power down together, with wake
// recovery times in 50us and 10ms units.
type PowerDomain struct {
	PowerDomainID  uint8
	RecoveryTime1  uint16
	RecoveryTime2  uint16
	NrEntities     uint8
	EntityIDs      []uint8
	DomainDescrStr uint16
}

func (p *PowerDomain) isAudioEntity() {}

func (p *PowerDomain) UnmarshalBinary(buf []byte) error {
	r := descriptors.NewReader(buf)
	var err error
	if p.PowerDomainID, err = r.U8("bPowerDomainID"); err != nil {
		return err
	}
	if p.RecoveryTime1, err = r.U16("waRecoveryTime(1)"); err != nil {
		return err
	}
	if p.RecoveryTime2, err = r.U16("waRecoveryTime(2)"); err != nil {
		return err
	}
	if p.NrEntities, err = r.U8("bNrEntities"); err != nil {
		return err
	}
	entities, err := r.Bytes(int(p.NrEntities), "baEntityID")
	if err != nil {
		return err
	}
	p.EntityIDs = dup(entities)
	p.DomainDescrStr, err = r.U16("wPDomainDescrStr")
	return err
}

func (p *PowerDomain) MarshalBinary() ([]byte, error) {
	buf := []byte{p.PowerDomainID}
	buf = binary.LittleEndian.AppendUint16(buf, p.RecoveryTime1)
	buf = binary.LittleEndian.AppendUint16(buf, p.RecoveryTime2)
	buf = append(buf, uint8(len(p.EntityIDs)))
	buf = append(buf, p.EntityIDs...)
	return binary.LittleEndian.AppendUint16(buf, p.DomainDescrStr), nil
}

// StreamingInterface3 is the class-specific AS interface general
// descriptor.
type StreamingInterface3 struct {
	TerminalLink   uint8
	Controls       uint32
	ClusterDescrID uint16
	Formats        uint64
	SubSlotSize    uint8
	BitResolution  uint8
	AuxProtocols   uint16
	ControlSize    uint8
}

func (s *StreamingInterface3) isAudioEntity() {}

func (s *StreamingInterface3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 20 {
		return truncated("streaming interface", 20, len(buf))
	}
	le := binary.LittleEndian
	s.TerminalLink = buf[0]
	s.Controls = le.Uint32(buf[1:5])
	s.ClusterDescrID = le.Uint16(buf[5:7])
	s.Formats = le.Uint64(buf[7:15])
	s.SubSlotSize = buf[15]
	s.BitResolution = buf[16]
	s.AuxProtocols = le.Uint16(buf[17:19])
	s.ControlSize = buf[19]
	return nil
}

func (s *StreamingInterface3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 20)
	le := binary.LittleEndian
	buf[0] = s.TerminalLink
	le.PutUint32(buf[1:5], s.Controls)
	le.PutUint16(buf[5:7], s.ClusterDescrID)
	le.PutUint64(buf[7:15], s.Formats)
	buf[15] = s.SubSlotSize
	buf[16] = s.BitResolution
	le.PutUint16(buf[17:19], s.AuxProtocols)
	buf[19] = s.ControlSize
	return buf, nil
}

// DataStreamingEndpoint3 is the class-specific AS isochronous data
// endpoint descriptor.
type DataStreamingEndpoint3 struct {
	Controls       uint32
	LockDelayUnits uint8
	LockDelay      uint16
}

func (d *DataStreamingEndpoint3) isAudioEntity() {}

func (d *DataStreamingEndpoint3) UnmarshalBinary(buf []byte) error {
	if len(buf) < 7 {
		return truncated("streaming endpoint", 7, len(buf))
	}
	d.Controls = binary.LittleEndian.Uint32(buf[0:4])
	d.LockDelayUnits = buf[4]
	d.LockDelay = binary.LittleEndian.Uint16(buf[5:7])
	return nil
}

func (d *DataStreamingEndpoint3) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 7)
	binary.LittleEndian.PutUint32(buf[0:4], d.Controls)
	buf[4] = d.LockDelayUnits
	binary.LittleEndian.PutUint16(buf[5:7], d.LockDelay)
	return buf, nil
}
