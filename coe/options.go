package coe

// Config holds the encoder configuration.
type Config struct {
	// WordsPerLine is the number of words emitted per data line
	WordsPerLine int

	// OffsetMarkers enables byte-offset comment lines between sections
	OffsetMarkers bool

	// HeaderComments are comment lines written before the preamble
	HeaderComments []string
}

// defaultConfig returns the default encoder configuration.
func defaultConfig() Config {
	return Config{
		WordsPerLine: 1,
	}
}

// Option is a functional option for configuring the encoder.
type Option func(*Config)

// WithWordsPerLine sets how many words are emitted per data line.
// Default is 1. TeleScan conversions conventionally use 4 so that one line
// covers 16 bytes of configuration space.
//
// Example:
//
//	err := doc.Encode(w, coe.WithWordsPerLine(4))
func WithWordsPerLine(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.WordsPerLine = n
		}
	}
}

// WithOffsetMarkers enables byte-offset comment lines. A marker is written
// before every 16th data line, carrying the byte offset of the words that
// follow:
//
//	; 0100
//	00000001,00000002,00000003,00000004,
//
// Example:
//
//	err := doc.Encode(w, coe.WithOffsetMarkers(true))
func WithOffsetMarkers(enabled bool) Option {
	return func(c *Config) {
		c.OffsetMarkers = enabled
	}
}

// WithHeaderComments sets comment lines written before the preamble.
// Each line is prefixed with "; " and the block is followed by a blank line.
//
// Example:
//
//	err := doc.Encode(w, coe.WithHeaderComments(
//	    "TeleScan to COE Conversion",
//	    "Source: capture.tlscan",
//	))
func WithHeaderComments(lines ...string) Option {
	return func(c *Config) {
		c.HeaderComments = lines
	}
}
