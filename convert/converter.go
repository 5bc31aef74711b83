package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fpgatools/go-telescan/coe"
	"github.com/fpgatools/go-telescan/telescan"
)

// Converter transforms TeleScan captures into COE memory initialization
// files. The conversion is a single in-memory pass; a Converter carries no
// state between calls and is safe for concurrent use.
type Converter struct {
	config Config
}

// New creates a new Converter with the given options.
//
// Example:
//
//	c := convert.New(
//	    convert.WithWordsPerLine(4),
//	    convert.WithStrict(true),
//	)
func New(opts ...Option) *Converter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Converter{config: cfg}
}

// Convert converts inputPath to outputPath using the default configuration.
//
// Example:
//
//	err := convert.Convert("capture.tlscan", "capture.coe")
func Convert(inputPath, outputPath string) error {
	return New().Convert(inputPath, outputPath)
}

// Convert performs the complete conversion sequence:
//  1. Read the input file
//  2. Parse it as a TeleScan XML capture or a raw dump
//  3. Validate completeness when strict mode is enabled
//  4. Encode the COE document
//  5. Write the output atomically
//
// On failure no output file is created and any existing file at outputPath
// is left untouched.
func (c *Converter) Convert(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	c.logDebug("read input", "path", inputPath, "bytes", len(raw))

	cs, err := c.parse(raw)
	if err != nil {
		return err
	}

	if c.config.Strict && !cs.Complete() {
		return &IncompleteCaptureError{Got: cs.Len()}
	}

	doc, err := coe.FromBytes(cs.Data)
	if err != nil {
		return fmt.Errorf("failed to build COE document: %w", err)
	}

	c.logDebug("parsed capture", "bytes", cs.Len(), "words", len(doc.Words))

	if err := c.write(doc, outputPath); err != nil {
		c.logError("write failed", "path", outputPath, "error", err)
		return err
	}

	c.logInfo("conversion complete", "words", len(doc.Words), "output", outputPath)
	return nil
}

// parse decodes the raw input. A document starting with '<' is a TeleScan
// XML capture; anything else is treated as a raw configuration-space dump.
func (c *Converter) parse(raw []byte) (*telescan.ConfigSpace, error) {
	if looksLikeXML(raw) {
		return telescan.ParseReader(bytes.NewReader(raw))
	}
	return telescan.ParseRaw(raw)
}

func looksLikeXML(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '<'
}

// write encodes the document to a temp file in the destination directory
// and renames it over outputPath, so a failed conversion never leaves a
// truncated .coe behind.
func (c *Converter) write(doc *coe.Document, outputPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".coe-*")
	if err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}
	tmpName := tmp.Name()

	if err := doc.Encode(tmp, c.encodeOptions()...); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &WriteError{Path: outputPath, Err: err}
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: outputPath, Err: err}
	}

	if err := os.Rename(tmpName, outputPath); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: outputPath, Err: err}
	}

	return nil
}

func (c *Converter) encodeOptions() []coe.Option {
	opts := []coe.Option{
		coe.WithWordsPerLine(c.config.WordsPerLine),
		coe.WithOffsetMarkers(c.config.OffsetMarkers),
	}
	if len(c.config.HeaderComments) > 0 {
		opts = append(opts, coe.WithHeaderComments(c.config.HeaderComments...))
	}
	return opts
}

func (c *Converter) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (c *Converter) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}

func (c *Converter) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
