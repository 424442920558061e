package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/remytrichard/splitics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagSize      string
	flagNumber    int
	flagEncoding  string
	flagPrefix    string
	flagOutputDir string
	flagQuiet     bool
	flagDryRun    bool
	flagOverwrite bool
	flagConfig    string
	flagLogLevel  string
	flagLogFile   string
)

var rootCmd = &cobra.Command{
	Use:   "splitics INPUT",
	Short: "Split large ICS calendar files into smaller chunks",
	Long: `Split large ICS calendar files into smaller chunks.

splitics cuts an .ics calendar into smaller files bounded by size, number
of events, or both. Every output file repeats the original calendar header
and is a valid standalone calendar. Useful when migrating a calendar into
Google Calendar, which only accepts files smaller than about 1MB.

Example: splitics calendar.ics -s 500K -n 50`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagSize, "size", "s", "1M", "maximum size per output file, e.g. 500K or 1M")
	flags.IntVarP(&flagNumber, "number", "n", 0, "maximum number of events per output file, 0 for no limit")
	flags.StringVarP(&flagEncoding, "encoding", "e", "utf8", "output file encoding")
	flags.StringVarP(&flagPrefix, "output-prefix", "o", "", "prefix for output files (default: derived from the input filename)")
	flags.StringVar(&flagOutputDir, "output-dir", "", "directory for output files (default: directory of the input file)")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the summary report")
	flags.BoolVar(&flagDryRun, "dry-run", false, "show what would be created without writing files")
	flags.BoolVar(&flagOverwrite, "overwrite", false, "overwrite existing output files without warning")
	flags.StringVar(&flagConfig, "config", "", "YAML file with default settings")
	flags.StringVar(&flagLogLevel, "loglevel", "warning", "log level")
	flags.StringVar(&flagLogFile, "logfile", "", "file to log to")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	logrus.SetLevel(level)

	if flagLogFile != "" {
		logFH, err := os.OpenFile(flagLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFH.Close()
		logrus.SetOutput(logFH)
	}

	if flagConfig != "" {
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}

	maxBytes, err := splitics.ParseSize(flagSize)
	if err != nil {
		return err
	}
	charset, err := splitics.Charset(flagEncoding)
	if err != nil {
		return err
	}

	input, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(input)
	}
	prefix := flagPrefix
	if prefix == "" {
		prefix = filepath.Base(input)
		if strings.HasSuffix(strings.ToLower(prefix), ".ics") {
			prefix = prefix[:len(prefix)-len(".ics")]
		}
	}

	log := logrus.WithFields(logrus.Fields{
		"run":   uuid.NewString(),
		"input": input,
	})

	var sink splitics.ChunkSink
	if flagDryRun {
		sink = &splitics.Collector{}
	} else {
		sink = &splitics.FileSink{
			Dir:       outputDir,
			Prefix:    prefix,
			Overwrite: flagOverwrite,
			Charset:   charset,
			Log:       log,
		}
	}

	splitter := splitics.New(
		splitics.MaxBytes(maxBytes),
		splitics.MaxEvents(flagNumber),
		splitics.WithCharset(charset),
		splitics.WithLogger(log),
	)

	parts, err := splitter.Split(in, sink)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Print(splitics.Summary(prefix, parts, flagDryRun))
	}
	return nil
}

// applyConfig fills in defaults from the config file for anything not set
// explicitly on the command line.
func applyConfig(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if cfg.Size != "" && !flags.Changed("size") {
		flagSize = cfg.Size
	}
	if cfg.Events > 0 && !flags.Changed("number") {
		flagNumber = cfg.Events
	}
	if cfg.Encoding != "" && !flags.Changed("encoding") {
		flagEncoding = cfg.Encoding
	}
	if !flags.Changed("overwrite") {
		flagOverwrite = cfg.Overwrite
	}
}
