// Command telescan2coe converts TeleScan PE capture files (.tlscan) to
// Vivado COE memory initialization files (.coe).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fpgatools/go-telescan/convert"
)

var (
	group      int
	markers    bool
	noComments bool
	strict     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "telescan2coe <capture.tlscan> [output.coe]",
	Short: "Convert TeleScan PE captures to Vivado COE files",
	Long: `Convert TeleScan PE captures to Vivado COE files.

Reads a PCIe configuration space capture saved by TeleScan PE (or a raw
configuration-space dump) and writes the contents as a COE memory
initialization file for FPGA IP cores.

When no output path is given, the output is written next to the input with
the extension replaced by .coe.`,
	Args:         cobra.RangeArgs(1, 2),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&group, "group", 4, "words per output line")
	flags.BoolVar(&markers, "markers", true, "emit byte-offset comment lines every 16 data lines")
	flags.BoolVar(&noComments, "no-comments", false, "suppress the generated header comment block")
	flags.BoolVar(&strict, "strict", false, "require a complete 4096-byte configuration space")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log conversion steps to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := defaultOutputPath(inputPath)
	if len(args) == 2 {
		outputPath = args[1]
	}

	opts := []convert.Option{
		convert.WithWordsPerLine(group),
		convert.WithOffsetMarkers(markers),
		convert.WithStrict(strict),
	}
	if !noComments {
		opts = append(opts, convert.WithHeaderComments(
			"TeleScan to COE Conversion",
			"Source: "+filepath.Base(inputPath),
			"Generated: "+time.Now().Format("2006-01-02 15:04:05"),
		))
	}
	if verbose {
		opts = append(opts, convert.WithLogger(&stderrLogger{}))
	}

	if err := convert.New(opts...).Convert(inputPath, outputPath); err != nil {
		return err
	}

	fmt.Printf("Successfully converted to %s\n", outputPath)
	return nil
}

// defaultOutputPath replaces the input extension with .coe.
func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".coe"
}

// stderrLogger writes converter logs to stderr for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, kv ...interface{}) { logLine("DEBUG", msg, kv) }
func (l *stderrLogger) Info(msg string, kv ...interface{})  { logLine("INFO", msg, kv) }
func (l *stderrLogger) Error(msg string, kv ...interface{}) { logLine("ERROR", msg, kv) }

func logLine(level, msg string, kv []interface{}) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", level, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(os.Stderr, sb.String())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
