package coe

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Constants for the COE output format.
const (
	// RadixLine declares hexadecimal radix for the memory contents
	RadixLine = "memory_initialization_radix=16;"

	// VectorLine opens the initialization vector
	VectorLine = "memory_initialization_vector="

	// WordSize is the size of one memory word in bytes
	WordSize = 4

	// WordHexDigits is the rendered width of one word in hex digits
	WordHexDigits = WordSize * 2

	// MarkerInterval is the number of data lines between offset markers
	MarkerInterval = 16
)

// Document represents a COE memory initialization file.
type Document struct {
	// Words contains the memory words in output order
	Words []uint32
}

// FromBytes builds a Document by partitioning data into 32-bit words.
// The first byte of each group becomes the most significant byte of the
// word. The length must be a whole number of words.
//
// Example:
//
//	doc, err := coe.FromBytes([]byte{0x00, 0x00, 0x00, 0x01})
//	// doc.Words == []uint32{0x00000001}
func FromBytes(data []byte) (*Document, error) {
	if len(data)%WordSize != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of the word size %d", len(data), WordSize)
	}

	words := make([]uint32, len(data)/WordSize)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*WordSize:])
	}
	return &Document{Words: words}, nil
}

// Encode writes the document to w in COE format.
//
// By default every word is written on its own line. Layout is adjusted with
// functional options:
//
//	err := doc.Encode(w,
//	    coe.WithWordsPerLine(4),
//	    coe.WithOffsetMarkers(true),
//	    coe.WithHeaderComments("TeleScan to COE Conversion"),
//	)
func (d *Document) Encode(w io.Writer, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)

	for _, line := range cfg.HeaderComments {
		fmt.Fprintf(bw, "; %s\n", line)
	}
	if len(cfg.HeaderComments) > 0 {
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, RadixLine)
	fmt.Fprintln(bw, VectorLine)

	if len(d.Words) == 0 {
		fmt.Fprintln(bw, ";")
		return bw.Flush()
	}

	for line := 0; line*cfg.WordsPerLine < len(d.Words); line++ {
		if cfg.OffsetMarkers && line%MarkerInterval == 0 {
			fmt.Fprintf(bw, "\n; %04X\n", line*cfg.WordsPerLine*WordSize)
		}

		start := line * cfg.WordsPerLine
		end := start + cfg.WordsPerLine
		if end > len(d.Words) {
			end = len(d.Words)
		}

		for i := start; i < end; i++ {
			sep := ","
			if i == len(d.Words)-1 {
				sep = ";"
			}
			fmt.Fprintf(bw, "%0*X%s", WordHexDigits, d.Words[i], sep)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// String renders the document with the given options.
func (d *Document) String(opts ...Option) string {
	var sb strings.Builder
	_ = d.Encode(&sb, opts...)
	return sb.String()
}
