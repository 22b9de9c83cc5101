package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String defaults are overrideable at build time via -ldflags -X
// Example: -ldflags "-X 'file-creator/pkg/config.DefaultOutDirStr=./fixtures'"
var (
	DefaultOutDirStr  = "."
	DefaultVerboseStr = "false"
)

// ErrHelp reports that -h or -help was requested. Callers print the usage
// text and exit cleanly.
var ErrHelp = errors.New("help requested")

type Config struct {
	Prefix    string
	Extension string
	SizeBytes int64
	Count     int
	ZeroPad   int

	BMP    bool
	Width  int
	Height int

	OutDir   string
	Manifest string
	Archive  string
	Clean    bool
	Verbose  bool
}

func DefaultConfig() *Config {
	return &Config{
		OutDir:  orString(DefaultOutDirStr, "."),
		Verbose: parseBoolOr(DefaultVerboseStr, false),
	}
}

// ParseArgs interprets a command line (without the program name). Flags and
// positionals may be interleaved; --bmp consumes the two value tokens that
// follow it. The standard flag package cannot express a two-value flag, so
// the scan is done by hand.
//
// Positionals: PREFIX EXTENSION SIZE_IN_BYTES COUNT [ZERO_PAD]
func ParseArgs(args []string) (*Config, error) {
	cfg := DefaultConfig()
	var positionals []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || looksLikeNumber(arg) {
			positionals = append(positionals, arg)
			continue
		}

		name, inline, hasInline := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch name {
		case "bmp":
			if hasInline {
				return nil, errors.New("--bmp takes two separate values: --bmp WIDTH HEIGHT")
			}
			if i+2 >= len(args) {
				return nil, errors.New("--bmp requires WIDTH and HEIGHT values")
			}
			width, err := parseIntArg("WIDTH", args[i+1])
			if err != nil {
				return nil, err
			}
			height, err := parseIntArg("HEIGHT", args[i+2])
			if err != nil {
				return nil, err
			}
			cfg.BMP, cfg.Width, cfg.Height = true, width, height
			i += 2

		case "out", "manifest", "archive":
			value := inline
			if !hasInline {
				i++
				if i >= len(args) {
					return nil, fmt.Errorf("flag -%s requires a value", name)
				}
				value = args[i]
			}
			switch name {
			case "out":
				cfg.OutDir = value
			case "manifest":
				cfg.Manifest = value
			case "archive":
				cfg.Archive = value
			}

		case "clean", "verbose", "v", "h", "help":
			if hasInline {
				return nil, fmt.Errorf("flag -%s takes no value", name)
			}
			switch name {
			case "clean":
				cfg.Clean = true
			case "verbose", "v":
				cfg.Verbose = true
			default:
				return nil, ErrHelp
			}

		default:
			return nil, fmt.Errorf("unknown flag %q", arg)
		}
	}

	if len(positionals) < 4 || len(positionals) > 5 {
		return nil, fmt.Errorf("expected 4 or 5 positional arguments (prefix extension size_in_bytes count [zero_pad]), got %d", len(positionals))
	}

	cfg.Prefix = positionals[0]
	cfg.Extension = positionals[1]

	size, err := strconv.ParseInt(positionals[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid size_in_bytes value %q: expected an integer", positionals[2])
	}
	cfg.SizeBytes = size

	count, err := parseIntArg("count", positionals[3])
	if err != nil {
		return nil, err
	}
	cfg.Count = count

	if len(positionals) == 5 {
		pad, err := parseIntArg("zero_pad", positionals[4])
		if err != nil {
			return nil, err
		}
		cfg.ZeroPad = pad
	}

	// BMP mode always produces .bmp files, whatever extension was given.
	if cfg.BMP {
		cfg.Extension = "bmp"
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if !c.BMP && c.SizeBytes < 0 {
		return errors.New("size_in_bytes must be non-negative")
	}
	if c.ZeroPad < 0 {
		return errors.New("zero_pad must be non-negative")
	}
	return nil
}

func Usage(appName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [flags] PREFIX EXTENSION SIZE_IN_BYTES COUNT [ZERO_PAD]\n\n", appName)
	b.WriteString("Creates test fixture files: raw random bytes by default, or valid 24-bit\n")
	b.WriteString("BMP images with random pixels in --bmp mode.\n\n")
	b.WriteString("Positional arguments:\n")
	b.WriteString("  PREFIX          File name prefix for every generated file.\n")
	b.WriteString("  EXTENSION       File extension (ignored with --bmp; .bmp is used).\n")
	b.WriteString("  SIZE_IN_BYTES   Size of each random file (ignored with --bmp).\n")
	b.WriteString("  COUNT           Number of files to create.\n")
	b.WriteString("  ZERO_PAD        Optional zero-padding width for the file index.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString("  --bmp WIDTH HEIGHT   Create BMP image files of the given dimensions\n")
	b.WriteString("                       instead of raw random files.\n")
	b.WriteString("  -out DIR             Output directory, created if missing (default \".\").\n")
	b.WriteString("  -clean               Remove stale PREFIX_*.EXTENSION files from the\n")
	b.WriteString("                       output directory before generating.\n")
	b.WriteString("  -manifest FILE       Write a YAML inventory of the generated files,\n")
	b.WriteString("                       with sizes and BLAKE2b checksums.\n")
	b.WriteString("  -archive FILE        Pack the files into an lz4-compressed tar archive\n")
	b.WriteString("                       instead of writing them to the output directory.\n")
	b.WriteString("  -verbose, -v         Print a run banner and summary.\n")
	b.WriteString("  -h, -help            Show this help.\n\n")
	b.WriteString("Examples:\n")
	fmt.Fprintf(&b, "  %s chunk bin 1048576 10\n", appName)
	fmt.Fprintf(&b, "  %s f bin 0 3 2\n", appName)
	fmt.Fprintf(&b, "  %s img ignored 0 5 3 --bmp 640 480\n", appName)
	fmt.Fprintf(&b, "  %s img x 0 100 --bmp 64 64 -out testdata -manifest fixtures.yaml\n", appName)
	return b.String()
}

// looksLikeNumber reports whether arg is a negative integer such as -5, which
// is a positional value rather than a flag.
func looksLikeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for _, ch := range arg[1:] {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: expected an integer", name, value)
	}
	return n, nil
}

// Helpers for parsing ldflag-provided strings
func parseBoolOr(val string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	case "0", "f", "false", "n", "no", "off":
		return false
	default:
		return fallback
	}
}

func orString(val string, fallback string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return fallback
	}
	return s
}
