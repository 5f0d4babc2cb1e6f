// Package cli provides the command-line interface layer for the input file
// generator: the shared dependency context and the interactive menu. It
// bridges user commands to the generator and the file system probes.
package cli

import (
	"fmt"

	"github.com/vitorrios1001/stream-learning/internal/gen"
	"github.com/vitorrios1001/stream-learning/internal/system"
	"github.com/vitorrios1001/stream-learning/internal/ui"
)

// Context holds all dependencies needed by the commands
type Context struct {
	UI *ui.UI
	FS *system.FileSystem
}

// NewContext creates a Context with all dependencies initialized
func NewContext() *Context {
	return &Context{
		UI: ui.New(),
		FS: system.NewFileSystem(),
	}
}

// Generate runs the file generator and prints the confirmation line to
// stdout. Any filesystem failure propagates unchanged; nothing is retried and
// a partial file is left where it is.
func (c *Context) Generate() error {
	result, err := gen.New().Run()
	if err != nil {
		return err
	}

	// The one stdout line other tooling looks for.
	fmt.Printf("File created successfully at %s\n", result.Path)
	return nil
}

// ShowStatus reports on the generated file and the disk it lives on.
func (c *Context) ShowStatus() error {
	g := gen.New()

	c.UI.Header("Input File Status")

	c.UI.Infof("Output path:  %s", g.OutputPath)
	c.UI.Infof("Line length:  %d bytes", len(g.Line))
	c.UI.Infof("Planned size: %d bytes (%d lines)", g.PlannedBytes(), g.NumLines())
	c.UI.Print("")

	exists, err := c.FS.FileExists(g.OutputPath)
	if err != nil {
		return err
	}

	if exists {
		size, err := c.FS.FileSize(g.OutputPath)
		if err != nil {
			return err
		}
		if size == g.PlannedBytes() {
			c.UI.Successf("File exists: %d bytes", size)
		} else {
			c.UI.Warningf("File exists: %d bytes (planned size is %d)", size, g.PlannedBytes())
		}
	} else {
		c.UI.Info("File has not been generated yet")
	}

	free, err := c.FS.FreeSpace(g.OutputPath)
	if err != nil {
		return err
	}
	c.UI.Infof("Free space:   %d bytes", free)

	c.UI.Print("")
	return nil
}

// RemoveFile deletes the generated file if present.
func (c *Context) RemoveFile() error {
	path := gen.DefaultOutputPath

	exists, err := c.FS.FileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		c.UI.Infof("Nothing to remove: %s does not exist", path)
		return nil
	}

	if err := c.FS.RemoveFile(path); err != nil {
		return err
	}

	c.UI.Successf("Removed %s", path)
	return nil
}
