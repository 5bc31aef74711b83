// Package telescan provides parsing for TeleScan PE .tlscan capture files.
//
// # TLSCAN File Format
//
// A .tlscan file is an XML document saved by the TeleScan PE utility after
// scanning a PCIe device. The capture payload is the text content of the
// first <bytes> element in the document:
//
//	<data>
//	  <config>
//	    <bytes>86801013de10...</bytes>
//	  </config>
//	</data>
//
// The text is a run of hexadecimal characters encoding the device's PCIe
// configuration space. A capture of the full 4 KiB extended configuration
// space is 8192 hex characters (4096 bytes). Each group of 8 hex characters
// is one 32-bit configuration dword; the first character pair of a group is
// the most significant byte of the dword.
//
// # Usage
//
// Parse a .tlscan file from disk:
//
//	cs, err := telescan.Parse("capture.tlscan")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Capture size: %d bytes\n", cs.Len())
//	for _, dw := range cs.Dwords() {
//	    fmt.Printf("%08X\n", dw)
//	}
//
// Parse from an io.Reader:
//
//	cs, err := telescan.ParseReader(strings.NewReader(xmlContent))
//
// Raw configuration-space dumps (no XML wrapper) are handled by ParseRaw:
//
//	cs, err := telescan.ParseRaw(dump)
//
// # Error Handling
//
// Parse returns detailed errors for invalid files:
//   - Missing <bytes> element
//   - Non-hexadecimal characters in the payload
//   - Payload length not aligned to a whole dword
//
// All errors include context about what failed and where.
package telescan
