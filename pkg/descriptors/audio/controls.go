package audio

// ControlSetting is the access mode encoded by one 2-bit field of a
// bmControls map. 0b10 is reserved and never valid on the wire.
type ControlSetting byte

const (
	ControlSettingReadOnly     ControlSetting = 0b01
	ControlSettingIllegalValue ControlSetting = 0b10
	ControlSettingReadWrite    ControlSetting = 0b11
)

func ControlSettingFromBits(b byte) ControlSetting {
	switch b {
	case 0b01:
		return ControlSettingReadOnly
	case 0b11:
		return ControlSettingReadWrite
	default:
		return ControlSettingIllegalValue
	}
}

func (s ControlSetting) String() string {
	switch s {
	case ControlSettingReadOnly:
		return "read-only"
	case ControlSettingReadWrite:
		return "read/write"
	default:
		return "ILLEGAL VALUE (0b10)"
	}
}

// ControlType says how wide the per-control fields of a bmControls map
// are: one bit per control (presence only, UAC1) or two bits (presence
// plus access, UAC2/3).
type ControlType byte

const (
	BmControl1 ControlType = 1
	BmControl2 ControlType = 2
)

// Control is one decoded entry of a bmControls map. Setting is only
// meaningful for 2-bit maps; 1-bit maps report presence alone.
type Control struct {
	Name    string
	Setting ControlSetting
}

// Controls expands a bmControls value against its label table. The table
// length is the control count: bits beyond it are device-reserved and
// ignored. For BmControl1 every set bit yields its label; for BmControl2
// every non-zero 2-bit field yields the label with its access mode, the
// reserved 0b10 pattern included so dumps can flag it.
func Controls(bitmap uint32, labels []string, typ ControlType) []Control {
	var out []Control
	for i, name := range labels {
		if name == "" {
			continue
		}
		switch typ {
		case BmControl1:
			if bitmap>>uint(i)&0x1 != 0 {
				out = append(out, Control{Name: name})
			}
		case BmControl2:
			if bits := byte(bitmap >> (2 * uint(i)) & 0x3); bits != 0 {
				out = append(out, Control{Name: name, Setting: ControlSettingFromBits(bits)})
			}
		}
	}
	return out
}

// ControlNames is Controls for presence-only maps, returning just the
// labels of the set bits.
func ControlNames(bitmap uint32, labels []string) []string {
	var out []string
	for i, name := range labels {
		if name != "" && bitmap>>uint(i)&0x1 != 0 {
			out = append(out, name)
		}
	}
	return out
}

// Control label tables, indexed by bit (or 2-bit field) position.
var (
	InterfaceHeaderControls2    = []string{"Legacy"}
	InputTerminalControls2      = []string{"Copy Protect", "Connector", "Overload", "Cluster", "Underflow", "Overflow"}
	InputTerminalControls3      = []string{"Insertion", "Overload", "Underflow", "Overflow", "Underflow"}
	OutputTerminalControls2     = []string{"Copy Protect", "Connector", "Overload", "Underflow", "Overflow"}
	OutputTerminalControls3     = []string{"Insertion", "Overload", "Underflow", "Overflow"}
	StreamingInterfaceControls2 = []string{"Active Alternate Setting", "Valid Alternate Setting"}
	StreamingInterfaceControls3 = []string{"Active Alternate Setting", "Valid Alternate Setting", "Audio Data Format Control"}
	IsoEndpointControls2        = []string{"Pitch", "Data Overrun", "Data Underrun"}
	MixerUnitControls2          = []string{"Cluster", "Underflow", "Overflow", "Overflow"}
	MixerUnitControls3          = []string{"Underflow", "Overflow"}
	SelectorUnitControls2       = []string{"Selector"}
	FeatureUnitControls1        = []string{
		"Mute", "Volume", "Bass", "Mid", "Treble", "Graphic Equalizer",
		"Automatic Gain", "Delay", "Bass Boost", "Loudness", "Input gain",
		"Input gain pad", "Phase invert",
	}
	ExtensionUnitControls2            = []string{"Enable", "Cluster", "Underflow", "Overflow"}
	ExtensionUnitControls3            = []string{"Underflow", "Overflow"}
	ClockSourceControls2              = []string{"Clock Frequency", "Clock Validity"}
	ClockSelectorControls2            = []string{"Clock Selector"}
	ClockMultiplierControls2          = []string{"Clock Numerator", "Clock Denominator"}
	ProcessingUpDownControls3         = []string{"Mode Select", "Underflow", "Overflow"}
	ProcessingStereoExtenderControls3 = []string{"Width", "Underflow", "Overflow"}
	ProcessingMultiFunctionControls3  = []string{"Underflow", "Overflow"}
)

// Clock source bmAttributes bit labels.
var (
	ClockSourceAttrs2 = []string{"External", "Internal fixed", "Internal variable", "Internal programmable"}
	ClockSourceAttrs3 = []string{"External", "Internal", "(asynchronous)", "(synchronized to SOF)"}
)

// Data endpoint bmAttributes bit labels; empty entries are reserved bits.
var (
	EndpointAttrs1 = []string{
		"Sampling Frequency", "Pitch", "Audio Data Format Control",
		"", "", "", "", "MaxPacketsOnly",
	}
	EndpointAttrs2 = []string{"", "", "", "", "", "", "", "MaxPacketsOnly"}
)

// MultiFunctionAlgorithms3 labels the bmAlgorithms bits of a UAC3
// multi-function processing unit.
var MultiFunctionAlgorithms3 = []string{
	"Beam Forming", "Acoustic Echo Cancellation", "Active Noise Cancellation",
	"Blind Source Separation", "Noise Suppression/Reduction",
}

// uac1ChannelNames is the wChannelConfig spatial location table (UAC1
// spec, table 3-4).
var uac1ChannelNames = []string{
	"Left Front (L)", "Right Front (R)", "Center Front (C)",
	"Low Frequency Enhancement (LFE)", "Left Surround (LS)",
	"Right Surround (RS)", "Left of Center (LC)", "Right of Center (RC)",
	"Surround (S)", "Side Left (SL)", "Side Right (SR)", "Top (T)",
}

// uac2ChannelNames is the bmChannelConfig spatial location table (UAC2
// spec, table 4-30). Bit 31 flags raw, non-spatial data.
var uac2ChannelNames = []string{
	"Front Left (FL)", "Front Right (FR)", "Front Center (FC)",
	"Low Frequency Effects (LFE)", "Back Left (BL)", "Back Right (BR)",
	"Front Left of Center (FLC)", "Front Right of Center (FRC)",
	"Back Center (BC)", "Side Left (SL)", "Side Right (SR)",
	"Top Center (TC)", "Top Front Left (TFL)", "Top Front Center (TFC)",
	"Top Front Right (TFR)", "Top Back Left (TBL)", "Top Back Center (TBC)",
	"Top Back Right (TBR)", "Top Front Left of Center (TFLC)",
	"Top Front Right of Center (TFRC)", "Left Low Frequency Effects (LLFE)",
	"Right Low Frequency Effects (RLFE)", "Top Side Left (TSL)",
	"Top Side Right (TSR)", "Bottom Center (BC)",
	"Back Left of Center (BLC)", "Back Right of Center (BRC)",
}

// ChannelNames expands a channel cluster config bitmap into spatial
// location names. UAC1 uses the 12-position wChannelConfig table; UAC2
// the 27-position bmChannelConfig table with bit 31 meaning raw data.
// UAC3 moved cluster layout into separate cluster descriptors, so no
// names are produced for it.
func ChannelNames(protocol Protocol, config uint32) []string {
	switch protocol {
	case ProtocolUac1:
		return ControlNames(config, uac1ChannelNames)
	case ProtocolUac2:
		names := ControlNames(config, uac2ChannelNames)
		if config&(1<<31) != 0 {
			names = append(names, "Raw Data (RD)")
		}
		return names
	default:
		return nil
	}
}

// ProcessTypeName names a processing unit's wProcessType for display.
func ProcessTypeName(protocol Protocol, processType uint16) string {
	switch protocol {
	case ProtocolUac1, ProtocolUac2:
		switch processType {
		case 0x01:
			return "Up/Down-mix"
		case 0x02:
			return "Dolby Prologic"
		case 0x03:
			return "3D Stereo Extender"
		case 0x04:
			return "Reverberation"
		case 0x05:
			return "Chorus"
		case 0x06:
			return "Dyn Range Comp"
		}
	case ProtocolUac3:
		switch processType {
		case 0x01:
			return "Up/Down-mix"
		case 0x02:
			return "Stereo Extender"
		case 0x03:
			return "Multi Function"
		}
	}
	return "Undefined"
}

var formatTagsTypeI = []string{"TYPE_I_UNDEFINED", "PCM", "PCM8", "IEEE_FLOAT", "ALAW", "MULAW"}

var formatTagsTypeII = []string{"TYPE_II_UNDEFINED", "MPEG", "AC-3"}

var formatTagsTypeIII = []string{
	"TYPE_III_UNDEFINED", "IEC1937_AC-3", "IEC1937_MPEG-1_Layer1",
	"IEC1937_MPEG-Layer2/3/NOEXT", "IEC1937_MPEG-2_EXT",
	"IEC1937_MPEG-2_Layer1_LS", "IEC1937_MPEG-2_Layer2/3_LS",
}

// FormatTagName names a UAC1 wFormatTag. The three format type families
// occupy disjoint code ranges.
func FormatTagName(tag uint16) string {
	switch {
	case tag <= 0x0005:
		return formatTagsTypeI[tag]
	case tag >= 0x1000 && tag <= 0x1002:
		return formatTagsTypeII[tag&0xfff]
	case tag >= 0x2000 && tag <= 0x2006:
		return formatTagsTypeIII[tag&0xfff]
	default:
		return "undefined"
	}
}
