package telescan

import "fmt"

// MissingBytesError indicates that the XML document has no usable <bytes>
// element.
type MissingBytesError struct{}

func (e *MissingBytesError) Error() string {
	return "invalid capture: missing <bytes> element"
}

// InvalidHexError indicates that the capture payload contains a character
// that is not a hexadecimal digit.
type InvalidHexError struct {
	// Offset is the character position within the payload
	Offset int

	// Char is the offending character
	Char byte
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex character %q at offset %d", e.Char, e.Offset)
}

// AlignmentError indicates that the capture length is not a whole number of
// configuration dwords.
type AlignmentError struct {
	// Length is the payload length (hex characters for XML captures,
	// bytes for raw dumps)
	Length int

	// Multiple is the required alignment
	Multiple int

	// Unit names what Length counts ("hex characters" or "bytes")
	Unit string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("capture length not dword-aligned: %d %s is not a multiple of %d",
		e.Length, e.Unit, e.Multiple)
}
