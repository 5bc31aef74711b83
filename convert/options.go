package convert

// Config holds the converter configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// Strict requires the capture to cover the full 4096-byte
	// configuration space
	Strict bool

	// WordsPerLine is the number of words per COE data line
	WordsPerLine int

	// OffsetMarkers enables byte-offset comment lines in the output
	OffsetMarkers bool

	// HeaderComments are comment lines written before the COE preamble
	HeaderComments []string
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		WordsPerLine: 1,
	}
}

// Option is a functional option for configuring the Converter.
type Option func(*Config)

// WithLogger sets a logger for converter operations.
//
// Example:
//
//	c := convert.New(convert.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStrict requires the capture to be a complete 4096-byte configuration
// space. Default is false, so partial captures convert as well.
//
// Example:
//
//	c := convert.New(convert.WithStrict(true))
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}

// WithWordsPerLine sets how many words are emitted per COE data line.
// Default is 1.
//
// Example:
//
//	c := convert.New(convert.WithWordsPerLine(4))
func WithWordsPerLine(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.WordsPerLine = n
		}
	}
}

// WithOffsetMarkers enables byte-offset comment lines in the output.
//
// Example:
//
//	c := convert.New(convert.WithOffsetMarkers(true))
func WithOffsetMarkers(enabled bool) Option {
	return func(c *Config) {
		c.OffsetMarkers = enabled
	}
}

// WithHeaderComments sets comment lines written before the COE preamble.
//
// Example:
//
//	c := convert.New(convert.WithHeaderComments(
//	    "TeleScan to COE Conversion",
//	    "Source: capture.tlscan",
//	))
func WithHeaderComments(lines ...string) Option {
	return func(c *Config) {
		c.HeaderComments = lines
	}
}
