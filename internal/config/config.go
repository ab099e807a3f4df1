package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	// Input and output documents, absolute paths.
	InputPath  string
	OutputPath string

	// ProjectRoot is the directory of the input document; graphics
	// references are resolved against it and the unused-PDF pass walks it.
	// TexRoot is the directory of the output document; the .tex cleanup
	// pass walks it.
	ProjectRoot string
	TexRoot     string

	// Cleanup
	DeleteTex        bool
	DeleteUnusedPDFs bool

	// Diagnostics
	CheckPDFs bool
}

// New resolves input and output to absolute paths and derives the
// directories a run operates on.
func New(input, output string) (Config, error) {
	in, err := filepath.Abs(input)
	if err != nil {
		return Config{}, fmt.Errorf("resolve input path: %w", err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return Config{}, fmt.Errorf("resolve output path: %w", err)
	}

	return Config{
		InputPath:   in,
		OutputPath:  out,
		ProjectRoot: filepath.Dir(in),
		TexRoot:     filepath.Dir(out),
	}, nil
}

func (c Config) Validate() error {
	info, err := os.Stat(c.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file %s not found", c.InputPath)
		}
		return fmt.Errorf("stat input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, not a file", c.InputPath)
	}
	if c.InputPath == c.OutputPath {
		return fmt.Errorf("output path must differ from input path")
	}
	return nil
}
