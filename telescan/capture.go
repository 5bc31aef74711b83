package telescan

import "encoding/binary"

// Constants for the TLSCAN capture format.
const (
	// ConfigSpaceSize is the size of a complete PCIe extended configuration
	// space in bytes
	ConfigSpaceSize = 4096

	// HexLength is the number of hex characters in a complete capture
	HexLength = ConfigSpaceSize * 2

	// DwordSize is the size of one configuration dword in bytes
	DwordSize = 4
)

// ConfigSpace represents a parsed PCIe configuration space capture.
type ConfigSpace struct {
	// Data is the raw configuration space contents, in capture order
	Data []byte
}

// Len returns the capture size in bytes.
func (c *ConfigSpace) Len() int {
	return len(c.Data)
}

// Complete reports whether the capture covers the full 4 KiB extended
// configuration space.
func (c *ConfigSpace) Complete() bool {
	return len(c.Data) == ConfigSpaceSize
}

// Dwords returns the capture as 32-bit configuration dwords.
// The first byte of each group is the most significant byte of the dword,
// matching the order the bytes appear in the capture.
func (c *ConfigSpace) Dwords() []uint32 {
	words := make([]uint32, len(c.Data)/DwordSize)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(c.Data[i*DwordSize:])
	}
	return words
}
