// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stephenlclarke/fixwire/config"
	"github.com/stephenlclarke/fixwire/decoder"
	"github.com/stephenlclarke/fixwire/fix"
	"golang.org/x/term"
)

// Version, Branch, GitUrl, Sha are injected at build time via -ldflags
var (
	Version = "0.0.0"
	Branch  = "main"
	GitUrl  = "git@github.com:stephenlclarke/fixwire.git"
	Sha     = "0000000"
)

type colourFlag struct {
	isSet bool
	value bool
}

func (c *colourFlag) String() string {
	if c.value {
		return "true"
	}
	return "false"
}

func (c *colourFlag) Set(s string) error {
	c.isSet = true
	s = strings.ToLower(s)
	switch s {
	case "", "true", "yes":
		c.value = true
	case "false", "no":
		c.value = false
	default:
		return fmt.Errorf("invalid value for -colour: %q", s)
	}
	return nil
}

func (c *colourFlag) IsBoolFlag() bool {
	return true
}

// CLIOptions holds all parsed flag values.
type CLIOptions struct {
	ConfigPath  string
	Verify      bool
	Obfuscate   bool
	Build       bool
	ShowVersion bool
	Colour      colourFlag
}

// parseFlagsArgs parses command-line arguments using a fresh FlagSet.
func parseFlagsArgs(args []string) CLIOptions {
	var colour colourFlag

	fs := flag.NewFlagSet("fixwire", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a fixwire.toml configuration file")
	verify := fs.Bool("verify", false, "Run structural checks on decoded messages")
	obfuscate := fs.Bool("obfuscate", false, "Replace sensitive tag values with stable aliases")
	build := fs.Bool("build", false, "Build a message: fixwire -build VERSION MSGTYPE [tag=value ...]")
	showVersion := fs.Bool("version", false, "Print version information and exit")
	fs.Var(&colour, "colour", "Force coloured output (yes|no). Default: auto-detect based on stdout")

	fs.Usage = func() {
		PrintUsage()
		fmt.Println("\nFlags:")
		fs.PrintDefaults()
		os.Exit(1)
	}

	fs.Parse(args)

	return CLIOptions{
		ConfigPath:  *configPath,
		Verify:      *verify,
		Obfuscate:   *obfuscate,
		Build:       *build,
		ShowVersion: *showVersion,
		Colour:      colour,
	}
}

// PrintUsage prints the program usage.
func PrintUsage() {
	fmt.Printf("fixwire %s (branch:%s, commit:%s)\n\n", Version, Branch, Sha)
	fmt.Printf("  git clone %s\n\n", GitUrl)
	fmt.Println("Usage: fixwire [-config=FILE] [-verify] [-obfuscate] [-colour=yes|no] [file1.log file2.log ...]")
	fmt.Println("       fixwire -build VERSION MSGTYPE [tag=value ...]")
	fmt.Println("       fixwire -version")
}

// extractFileArgsOrStdin returns all CLI elements that represent filenames
// (i.e. arguments that do NOT begin with '-').
// If the user supplied no such arguments, it returns []{"-"}, which
// decoder.PrettifyFiles interprets as "read from os.Stdin".
func extractFileArgsOrStdin(args []string) []string {
	files := extractPositionalArgs(args)
	if len(files) == 0 {
		files = []string{"-"}
	}
	return files
}

// extractPositionalArgs returns the non-flag arguments in order, treating a
// single dash as positional (it names stdin).
func extractPositionalArgs(args []string) []string {
	var out []string
	for _, a := range args {
		if !strings.HasPrefix(a, "-") || a == "-" {
			out = append(out, a)
		}
	}
	return out
}

// newLogger returns the CLI's stderr logger.
func newLogger(errOut io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: errOut}).With().Timestamp().Logger()
}

// loadConfigFromOpts picks between an explicit config file or the defaults.
func loadConfigFromOpts(opts CLIOptions) (config.Config, error) {
	if opts.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(opts.ConfigPath)
}

// resolveColours disables colour output unless the flag, the config or the
// terminal says otherwise. Flag wins over config, config over auto-detect.
func resolveColours(opts CLIOptions, cfg config.Config) {
	if opts.Colour.isSet {
		if !opts.Colour.value {
			decoder.DisableColours()
		}
		return
	}

	switch cfg.Colour {
	case "yes":
	case "no":
		decoder.DisableColours()
	default: // auto
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			decoder.DisableColours()
		}
	}
}

// Process is the entry point: parses flags, loads configuration, runs
// handlers, and returns an exit code.
func Process(args []string, out, errOut io.Writer) int {
	opts := parseFlagsArgs(args)
	log := newLogger(errOut)

	cfg, err := loadConfigFromOpts(opts)
	if err != nil {
		log.Error().Err(err).Msg("cannot load configuration")
		return 1
	}

	if code, handled := runHandlers(opts, extractPositionalArgs(args), out, errOut); handled {
		return code
	}

	decoder.SetVerification(opts.Verify || cfg.Verify)
	resolveColours(opts, cfg)

	obfuscator := fix.NewObfuscator(cfg.SensitiveTags(), opts.Obfuscate || cfg.Obfuscate, log)

	files := extractFileArgsOrStdin(args)
	return decoder.PrettifyFiles(files, out, log, obfuscator)
}

func main() {
	os.Exit(Process(os.Args[1:], os.Stdout, os.Stderr))
}
