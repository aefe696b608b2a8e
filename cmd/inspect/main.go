// Command inspect opens a USB device, walks the class-specific descriptor
// blobs of its active configuration and prints the decoded form. It is a
// smoke harness for the descriptor packages more than a lsusb clone.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	usb "github.com/kevmo314/go-usb"
	"golang.org/x/sync/errgroup"

	"github.com/valerierx/cyme/pkg/descriptors"
	"github.com/valerierx/cyme/pkg/descriptors/audio"
)

func main() {
	vid := flag.Uint("vid", 0, "vendor ID of the device to inspect")
	pid := flag.Uint("pid", 0, "product ID of the device to inspect")
	config := flag.Uint("config", 0, "configuration descriptor index")
	flag.Parse()

	if *vid == 0 || *pid == 0 {
		log.Fatal("both -vid and -pid are required")
	}

	handle, err := usb.OpenDevice(uint16(*vid), uint16(*pid))
	if err != nil {
		log.Fatalf("open %04x:%04x: %v", *vid, *pid, err)
	}
	defer handle.Close()

	cfg, err := handle.GetConfigDescriptor(uint8(*config))
	if err != nil {
		log.Fatalf("config descriptor %d: %v", *config, err)
	}

	fmt.Printf("Configuration %d: %d interface(s), %d byte(s) total\n",
		cfg.ConfigurationValue, cfg.NumInterfaces, cfg.TotalLength)

	// Interfaces decode independently; output order is restored after
	// the wait so reports stay deterministic.
	reports := make([]string, len(cfg.Interfaces))
	var g errgroup.Group
	ins := inspector{handle: handle}
	for i := range cfg.Interfaces {
		g.Go(func() error {
			report, err := ins.dumpInterface(&cfg.Interfaces[i])
			reports[i] = report
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("decode: %v", err)
	}
	for _, report := range reports {
		fmt.Print(report)
	}
}

type inspector struct {
	handle *usb.DeviceHandle
}

func (ins *inspector) dumpInterface(iface *usb.Interface) (string, error) {
	var b strings.Builder
	for _, alt := range iface.AltSettings {
		fmt.Fprintf(&b, "Interface %d alt %d: class %02x/%02x proto %02x\n",
			alt.InterfaceNumber, alt.AlternateSetting,
			alt.InterfaceClass, alt.InterfaceSubClass, alt.InterfaceProtocol)

		triplet := descriptors.ClassCodeTriplet{
			Class:    descriptors.ClassCode(alt.InterfaceClass),
			SubClass: alt.InterfaceSubClass,
			Protocol: alt.InterfaceProtocol,
		}
		if err := ins.dumpExtra(&b, alt.Extra, triplet); err != nil {
			return b.String(), err
		}
		for _, ep := range alt.Endpoints {
			if len(ep.Extra) == 0 {
				continue
			}
			fmt.Fprintf(&b, "  Endpoint %02x:\n", ep.EndpointAddr)
			if err := ins.dumpEndpointExtra(&b, ep.Extra, triplet); err != nil {
				return b.String(), err
			}
		}
	}
	return b.String(), nil
}

// dumpExtra walks a class-specific blob block by block. Blocks whose
// declared length underruns the envelope stop the walk: the remainder is
// junk with no recoverable framing.
func (ins *inspector) dumpExtra(b *strings.Builder, extra []byte, triplet descriptors.ClassCodeTriplet) error {
	for i := 0; i < len(extra); {
		length := int(extra[i])
		if length < 2 || i+length > len(extra) {
			fmt.Fprintf(b, "  junk: % x\n", extra[i:])
			return nil
		}
		block := extra[i : i+length]
		i += length

		if triplet.Class == descriptors.ClassCodeAudio && isAudioInterfaceBlock(block) {
			kind := audio.InterfaceKindControl
			if triplet.SubClass == 2 {
				kind = audio.InterfaceKindStreaming
			}
			uac, err := audio.Parse(kind, audio.Protocol(triplet.Protocol), block)
			if err != nil {
				return err
			}
			ins.dumpAudio(b, uac)
			continue
		}

		desc, err := descriptors.Parse(block)
		if err != nil {
			return err
		}
		if cs, ok := desc.(*descriptors.ClassSpecific); ok {
			if err := cs.ApplyContext(triplet); err != nil {
				fmt.Fprintf(b, "  %v (kept generic)\n", err)
			}
			ins.dumpClass(b, cs)
			continue
		}
		fmt.Fprintf(b, "  %T\n", desc)
	}
	return nil
}

// isAudioInterfaceBlock picks out CS_INTERFACE blocks, the only type the
// audio interface parser handles; CS_ENDPOINT audio blocks arrive via
// dumpEndpointExtra.
func isAudioInterfaceBlock(block []byte) bool {
	return len(block) >= 2 &&
		descriptors.ClassSpecificDescriptorType(block[1]) == descriptors.ClassSpecificDescriptorTypeInterface
}

func (ins *inspector) dumpEndpointExtra(b *strings.Builder, extra []byte, triplet descriptors.ClassCodeTriplet) error {
	for i := 0; i < len(extra); {
		length := int(extra[i])
		if length < 2 || i+length > len(extra) {
			fmt.Fprintf(b, "    junk: % x\n", extra[i:])
			return nil
		}
		block := extra[i : i+length]
		i += length

		if triplet.Class == descriptors.ClassCodeAudio &&
			descriptors.ClassSpecificDescriptorType(block[1]) == descriptors.ClassSpecificDescriptorTypeEndpoint {
			if triplet.SubClass == 3 {
				med := &descriptors.MidiEndpointDescriptor{}
				if err := med.UnmarshalBinary(block); err != nil {
					return err
				}
				fmt.Fprintf(b, "    MIDI endpoint: jacks %v\n", med.Jacks)
				continue
			}
			uac, err := audio.Parse(audio.InterfaceKindStreamingEndpoint, audio.Protocol(triplet.Protocol), block)
			if err != nil {
				return err
			}
			ins.dumpAudio(b, uac)
			continue
		}

		desc, err := descriptors.Parse(block)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "    %T\n", desc)
	}
	return nil
}

func (ins *inspector) dumpClass(b *strings.Builder, cs *descriptors.ClassSpecific) {
	switch d := cs.Class.(type) {
	case *descriptors.HidDescriptor:
		fmt.Fprintf(b, "  HID %s, country %d, %d report descriptor(s)\n",
			d.BcdHID, d.CountryCode, len(d.Descriptors))
	case *descriptors.CcidDescriptor:
		fmt.Fprintf(b, "  CCID %s, %d slot(s), features %08x\n",
			d.Version, d.MaxSlotIndex+1, d.Features)
	case *descriptors.PrinterDescriptor:
		fmt.Fprintf(b, "  Printer, %d capability record(s)\n", len(d.Descriptors))
	case *descriptors.CommunicationDescriptor:
		fmt.Fprintf(b, "  CDC %s%s\n", d.CommunicationType, ins.resolveSuffix(d.StringIndex))
	case *descriptors.UvcDescriptor:
		line := fmt.Sprintf("  UVC %s%s", d.SubType, ins.resolveSuffix(d.StringIndex))
		if guid, ok := d.GUID(); ok {
			line += " guid " + guid.String()
		}
		fmt.Fprintln(b, line)
	case *descriptors.MidiDescriptor:
		fmt.Fprintf(b, "  MIDI %s%s\n", d.MidiType, ins.resolveSuffix(d.StringIndex))
	case *descriptors.GenericDescriptor:
		fmt.Fprintf(b, "  class descriptor subtype %02x (%d bytes)\n",
			d.DescriptorSubtype, d.ExpectedDataLength())
	default:
		fmt.Fprintf(b, "  %T\n", d)
	}
}

func (ins *inspector) dumpAudio(b *strings.Builder, uac *audio.UacDescriptor) {
	switch e := uac.Entity.(type) {
	case *audio.InvalidEntity:
		fmt.Fprintf(b, "  %s %s: invalid: %v\n", uac.Protocol, uac.ControlSubtype().DumpName(), e.Err)
	case *audio.UndefinedEntity:
		fmt.Fprintf(b, "  %s subtype %02x: % x\n", uac.Protocol, uac.SubtypeByte, e.Data)
	default:
		if uac.Kind == audio.InterfaceKindControl {
			fmt.Fprintf(b, "  %s %s (%s): %+v\n",
				uac.Protocol, uac.ControlSubtype(), uac.ControlSubtype().DumpName(), uac.Entity)
		} else {
			fmt.Fprintf(b, "  %s AS %s: %+v\n", uac.Protocol, uac.StreamingSubtype(), uac.Entity)
		}
	}
}

// resolveSuffix fetches a string descriptor for display, swallowing
// lookup failures: a missing string never fails a dump.
func (ins *inspector) resolveSuffix(index *uint8) string {
	if index == nil || *index == 0 {
		return ""
	}
	s, err := ins.handle.StringDescriptor(*index)
	if err != nil || s == "" {
		return ""
	}
	return " (" + s + ")"
}
