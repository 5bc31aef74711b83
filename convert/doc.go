// Package convert provides a high-level API for converting TeleScan PE
// captures to Vivado COE memory initialization files.
//
// # Overview
//
// This package orchestrates the complete conversion sequence:
//   - Reading the input file
//   - Detecting the capture format (TeleScan XML or raw dump)
//   - Parsing the configuration space
//   - Encoding the COE document
//   - Writing the output atomically (temp file + rename)
//
// # Basic Usage
//
// The simplest way to convert a capture:
//
//	err := convert.Convert("capture.tlscan", "capture.coe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	c := convert.New(
//	    convert.WithWordsPerLine(4),
//	    convert.WithOffsetMarkers(true),
//	    convert.WithStrict(true),
//	    convert.WithLogger(myLogger),
//	)
//	err := c.Convert("capture.tlscan", "capture.coe")
//
// # Logging
//
// Integrate with any logging framework by implementing the Logger
// interface:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	c := convert.New(convert.WithLogger(&StdLogger{}))
//
// # Error Handling
//
// The package surfaces structured error types:
//   - telescan.MissingBytesError: XML capture without a <bytes> element
//   - telescan.InvalidHexError: non-hex character in the payload
//   - telescan.AlignmentError: capture not a whole number of dwords
//   - IncompleteCaptureError: strict mode and the capture is not 4096 bytes
//   - WriteError: output could not be written
//
// A missing input file surfaces the wrapped os open error. No partial
// output file is left behind on any failure path.
package convert
