// Package gen implements the large input file generator. It writes a fixed
// line of text repeatedly until the output file reaches (but never exceeds)
// the target size, producing the input file the stream-processing exercises
// consume.
package gen

import (
	"bufio"
	"fmt"
	"os"
)

const (
	// TargetSize is the byte threshold the output file is sized against:
	// 10000 MiB. The project docs call this "10 GB"; the loose unit label is
	// kept as-is to match them.
	TargetSize = 10000 * 1024 * 1024

	// Line is written repeatedly to fill the file. It already carries its
	// own newline terminator. len(Line) is its UTF-8 byte length, which is
	// also the encoding the file is written in.
	Line = "This is a line of text to be transformed. Adding more text to increase the size of each line.\n"

	// DefaultOutputPath is relative to the working directory.
	DefaultOutputPath = "large-input.txt"
)

// Generator produces a text file of repeated identical lines. The zero value
// is not usable; construct with New and override fields before Run if needed
// (tests do, the CLI does not).
type Generator struct {
	TargetSize int64
	Line       string
	OutputPath string
}

// Result summarizes a completed generation run.
type Result struct {
	Path  string
	Lines int64
	Bytes int64
}

// New returns a Generator configured with the fixed project constants.
func New() *Generator {
	return &Generator{
		TargetSize: TargetSize,
		Line:       Line,
		OutputPath: DefaultOutputPath,
	}
}

// NumLines returns how many copies of the line fit within the target size,
// using floor division. The produced file is therefore at most TargetSize
// bytes, short by TargetSize mod len(Line).
func (g *Generator) NumLines() int64 {
	return g.TargetSize / int64(len(g.Line))
}

// PlannedBytes returns the exact size of the file Run will produce.
func (g *Generator) PlannedBytes() int64 {
	return g.NumLines() * int64(len(g.Line))
}

// Run creates (or truncates) the output file and writes the line NumLines
// times. Any filesystem error aborts the run and is returned as-is wrapped
// with the path; a partial file may be left behind.
func (g *Generator) Run() (*Result, error) {
	if g.Line == "" {
		return nil, fmt.Errorf("line constant must not be empty")
	}

	file, err := os.Create(g.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", g.OutputPath, err)
	}
	defer file.Close()

	numLines := g.NumLines()

	w := bufio.NewWriter(file)
	for i := int64(0); i < numLines; i++ {
		if _, err := w.WriteString(g.Line); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", g.OutputPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", g.OutputPath, err)
	}

	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", g.OutputPath, err)
	}

	return &Result{
		Path:  g.OutputPath,
		Lines: numLines,
		Bytes: numLines * int64(len(g.Line)),
	}, nil
}
