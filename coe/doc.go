// Package coe builds Xilinx Vivado COE memory initialization files.
//
// # COE File Format
//
// A COE file is a plain-text description of initial memory contents,
// consumed by Vivado IP cores (block RAM, PCIe configuration space shadows).
// The hexadecimal form starts with a fixed preamble followed by the word
// vector; every word is comma-separated and the final word is terminated
// with a semicolon:
//
//	memory_initialization_radix=16;
//	memory_initialization_vector=
//	00000001,
//	00000002;
//
// Lines starting with ';' are comments and are ignored by the consumer.
//
// # Usage
//
// Build a document from raw bytes and write it out:
//
//	doc, err := coe.FromBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.Encode(w,
//	    coe.WithWordsPerLine(4),
//	    coe.WithOffsetMarkers(true),
//	)
//
// Words render as exactly 8 uppercase hex digits. The encoder is
// deterministic; comment lines such as generation timestamps are supplied
// by the caller through WithHeaderComments.
package coe
