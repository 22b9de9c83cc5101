package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "basic random run",
			args: []string{"f", "bin", "1024", "10"},
			want: Config{Prefix: "f", Extension: "bin", SizeBytes: 1024, Count: 10, OutDir: "."},
		},
		{
			name: "with zero padding",
			args: []string{"f", "bin", "0", "3", "2"},
			want: Config{Prefix: "f", Extension: "bin", Count: 3, ZeroPad: 2, OutDir: "."},
		},
		{
			name: "bmp mode overrides extension",
			args: []string{"img", "ignored", "0", "5", "--bmp", "640", "480"},
			want: Config{Prefix: "img", Extension: "bmp", Count: 5, BMP: true, Width: 640, Height: 480, OutDir: "."},
		},
		{
			name: "flags before positionals",
			args: []string{"--bmp", "2", "1", "img", "x", "0", "1"},
			want: Config{Prefix: "img", Extension: "bmp", Count: 1, BMP: true, Width: 2, Height: 1, OutDir: "."},
		},
		{
			name: "single dash bmp",
			args: []string{"img", "x", "0", "1", "-bmp", "2", "1"},
			want: Config{Prefix: "img", Extension: "bmp", Count: 1, BMP: true, Width: 2, Height: 1, OutDir: "."},
		},
		{
			name: "negative count is a positional",
			args: []string{"f", "bin", "1024", "-3"},
			want: Config{Prefix: "f", Extension: "bin", SizeBytes: 1024, Count: -3, OutDir: "."},
		},
		{
			name: "negative bmp dimensions parse",
			args: []string{"img", "x", "0", "1", "--bmp", "-2", "1"},
			want: Config{Prefix: "img", Extension: "bmp", Count: 1, BMP: true, Width: -2, Height: 1, OutDir: "."},
		},
		{
			name: "output directory",
			args: []string{"-out", "fixtures", "f", "bin", "8", "1"},
			want: Config{Prefix: "f", Extension: "bin", SizeBytes: 8, Count: 1, OutDir: "fixtures"},
		},
		{
			name: "output directory inline form",
			args: []string{"-out=fixtures", "f", "bin", "8", "1"},
			want: Config{Prefix: "f", Extension: "bin", SizeBytes: 8, Count: 1, OutDir: "fixtures"},
		},
		{
			name: "manifest and archive",
			args: []string{"f", "bin", "8", "1", "-manifest", "m.yaml", "-archive", "out.tar.lz4"},
			want: Config{Prefix: "f", Extension: "bin", SizeBytes: 8, Count: 1, OutDir: ".", Manifest: "m.yaml", Archive: "out.tar.lz4"},
		},
		{
			name: "clean and verbose",
			args: []string{"-clean", "-v", "f", "bin", "8", "1"},
			want: Config{Prefix: "f", Extension: "bin", SizeBytes: 8, Count: 1, OutDir: ".", Clean: true, Verbose: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"too few positionals", []string{"f", "bin", "1024"}, "expected 4 or 5 positional arguments"},
		{"too many positionals", []string{"f", "bin", "1024", "10", "2", "9"}, "expected 4 or 5 positional arguments"},
		{"bad size", []string{"f", "bin", "abc", "10"}, "invalid size_in_bytes"},
		{"bad count", []string{"f", "bin", "10", "x"}, "invalid count"},
		{"bad zero pad", []string{"f", "bin", "10", "1", "y"}, "invalid zero_pad"},
		{"bmp missing values", []string{"f", "bin", "0", "1", "--bmp"}, "--bmp requires WIDTH and HEIGHT"},
		{"bmp missing height", []string{"f", "bin", "0", "1", "--bmp", "2"}, "--bmp requires WIDTH and HEIGHT"},
		{"bmp swallows positional", []string{"--bmp", "2", "img", "x", "0", "1"}, "invalid HEIGHT"},
		{"bmp inline form rejected", []string{"f", "bin", "0", "1", "--bmp=2x1"}, "two separate values"},
		{"flag missing value", []string{"f", "bin", "0", "1", "-out"}, "requires a value"},
		{"bool flag with value", []string{"f", "bin", "0", "1", "-clean=yes"}, "takes no value"},
		{"unknown flag", []string{"f", "bin", "0", "1", "-frobnicate"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"-help"}, {"--help"}, {"f", "bin", "0", "1", "-h"}} {
		_, err := ParseArgs(args)
		assert.ErrorIs(t, err, ErrHelp)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid random", Config{SizeBytes: 10, Count: 1}, ""},
		{"zero size is fine", Config{Count: 3}, ""},
		{"negative count is fine", Config{Count: -1}, ""},
		{"negative size rejected", Config{SizeBytes: -5, Count: 1}, "size_in_bytes must be non-negative"},
		{"negative size ignored in bmp mode", Config{SizeBytes: -5, Count: 1, BMP: true, Width: 2, Height: 2}, ""},
		{"negative zero pad rejected", Config{Count: 1, ZeroPad: -2}, "zero_pad must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestUsageDocumentsTheSurface(t *testing.T) {
	usage := Usage("file-creator")
	for _, fragment := range []string{
		"PREFIX EXTENSION SIZE_IN_BYTES COUNT [ZERO_PAD]",
		"--bmp WIDTH HEIGHT",
		"-out DIR",
		"-manifest FILE",
		"-archive FILE",
		"-clean",
		"Examples:",
	} {
		assert.Contains(t, usage, fragment)
	}
}
