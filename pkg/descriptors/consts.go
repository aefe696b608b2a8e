package descriptors

// ClassCode is the USB-IF assigned bInterfaceClass / bDeviceClass value.
type ClassCode byte

const (
	ClassCodeUseInterface       ClassCode = 0x00
	ClassCodeAudio              ClassCode = 0x01
	ClassCodeCDCCommunications  ClassCode = 0x02
	ClassCodeHID                ClassCode = 0x03
	ClassCodePhysical           ClassCode = 0x05
	ClassCodeImage              ClassCode = 0x06
	ClassCodePrinter            ClassCode = 0x07
	ClassCodeMassStorage        ClassCode = 0x08
	ClassCodeHub                ClassCode = 0x09
	ClassCodeCDCData            ClassCode = 0x0a
	ClassCodeSmartCard          ClassCode = 0x0b
	ClassCodeContentSecurity    ClassCode = 0x0d
	ClassCodeVideo              ClassCode = 0x0e
	ClassCodePersonalHealthcare ClassCode = 0x0f
	ClassCodeAudioVideo         ClassCode = 0x10
	ClassCodeBillboard          ClassCode = 0x11
	ClassCodeTypeCBridge        ClassCode = 0x12
	ClassCodeDiagnostic         ClassCode = 0xdc
	ClassCodeWirelessController ClassCode = 0xe0
	ClassCodeMiscellaneous      ClassCode = 0xef
	ClassCodeApplication        ClassCode = 0xfe
	ClassCodeVendorSpecific     ClassCode = 0xff
)

// ClassCodeTriplet is the (class, subclass, protocol) of the enclosing
// interface. A class descriptor's bytes alone cannot identify its layout;
// this context, owned by the interface, selects the specialized decoder.
type ClassCodeTriplet struct {
	Class    ClassCode
	SubClass uint8
	Protocol uint8
}

// ClassSpecificDescriptorType is the bDescriptorType range reserved for
// class-specific descriptors.
type ClassSpecificDescriptorType byte

const (
	ClassSpecificDescriptorTypeUndefined     ClassSpecificDescriptorType = 0x20
	ClassSpecificDescriptorTypeDevice        ClassSpecificDescriptorType = 0x21
	ClassSpecificDescriptorTypeConfiguration ClassSpecificDescriptorType = 0x22
	ClassSpecificDescriptorTypeString        ClassSpecificDescriptorType = 0x23
	ClassSpecificDescriptorTypeInterface     ClassSpecificDescriptorType = 0x24
	ClassSpecificDescriptorTypeEndpoint      ClassSpecificDescriptorType = 0x25
)

// EncryptionType for the encryption descriptor (Wireless USB spec 7.4.1).
type EncryptionType byte

const (
	EncryptionTypeUnsecure EncryptionType = 0x00
	EncryptionTypeWired    EncryptionType = 0x01
	EncryptionTypeCcm1     EncryptionType = 0x02
	EncryptionTypeRsa1     EncryptionType = 0x03
	EncryptionTypeReserved EncryptionType = 0x04
)

func EncryptionTypeFromByte(b byte) EncryptionType {
	if b > byte(EncryptionTypeRsa1) {
		return EncryptionTypeReserved
	}
	return EncryptionType(b)
}

func (e EncryptionType) String() string {
	switch e {
	case EncryptionTypeUnsecure:
		return "Unsecure"
	case EncryptionTypeWired:
		return "Wired"
	case EncryptionTypeCcm1:
		return "CCM-1"
	case EncryptionTypeRsa1:
		return "RSA-1"
	default:
		return "Reserved"
	}
}
