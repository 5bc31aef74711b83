package telescan

import (
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse parses a .tlscan file from the given file path.
// Returns the captured configuration space or an error if parsing fails.
//
// Example:
//
//	cs, err := telescan.Parse("capture.tlscan")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Capture size: %d bytes\n", cs.Len())
func Parse(path string) (*ConfigSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a .tlscan XML document from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// Example:
//
//	cs, err := telescan.ParseReader(strings.NewReader(xmlContent))
func ParseReader(r io.Reader) (*ConfigSpace, error) {
	payload, err := extractBytes(r)
	if err != nil {
		return nil, err
	}

	hexData := strings.TrimSpace(payload)
	if err := validateHex(hexData); err != nil {
		return nil, err
	}

	data, err := hex.DecodeString(hexData)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}

	return &ConfigSpace{Data: data}, nil
}

// ParseRaw parses a raw configuration-space dump with no XML wrapper.
// The byte length must be a whole number of configuration dwords.
//
// Example:
//
//	cs, err := telescan.ParseRaw(dump)
func ParseRaw(data []byte) (*ConfigSpace, error) {
	if len(data)%DwordSize != 0 {
		return nil, &AlignmentError{
			Length:   len(data),
			Multiple: DwordSize,
			Unit:     "bytes",
		}
	}

	cs := &ConfigSpace{Data: make([]byte, len(data))}
	copy(cs.Data, data)
	return cs, nil
}

// extractBytes streams XML tokens until the first <bytes> start element and
// returns its text content. Element depth does not matter; captures nest the
// element differently across TeleScan versions.
func extractBytes(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", &MissingBytesError{}
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse capture XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "bytes" {
			continue
		}

		var payload string
		if err := dec.DecodeElement(&payload, &start); err != nil {
			return "", fmt.Errorf("failed to read <bytes> element: %w", err)
		}
		return payload, nil
	}
}

// validateHex checks that the payload is pure hexadecimal and covers a whole
// number of dwords.
func validateHex(hexData string) error {
	for i := 0; i < len(hexData); i++ {
		c := hexData[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return &InvalidHexError{Offset: i, Char: c}
		}
	}

	if len(hexData)%(DwordSize*2) != 0 {
		return &AlignmentError{
			Length:   len(hexData),
			Multiple: DwordSize * 2,
			Unit:     "hex characters",
		}
	}

	return nil
}
