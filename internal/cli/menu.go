package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vitorrios1001/stream-learning/internal/gen"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu interface
type Menu struct {
	ctx *Context
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *Context) *Menu {
	return &Menu{ctx: ctx}
}

// clearScreen clears the terminal screen using ANSI escape codes
// This is more portable than calling the 'clear' command
func clearScreen() {
	// ANSI escape codes: \033[2J clears screen, \033[H moves cursor to home
	fmt.Print("\033[2J\033[H")
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	for {
		clearScreen()
		m.displayMenu()

		choice, err := m.ctx.UI.PromptInput("Enter your choice", "")
		if err != nil {
			return err
		}

		choice = strings.ToUpper(strings.TrimSpace(choice))

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
		}

		if choice != "" {
			m.ctx.UI.Print("")
			m.ctx.UI.Info("Press Enter to continue...")
			fmt.Scanln()
		}
	}
}

// displayMenu displays the main menu
func (m *Menu) displayMenu() {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	// Header
	border := strings.Repeat("=", 70)
	cyan.Println(border)
	cyan.Println("  Stream Learning Input Generator")
	cyan.Println(border)
	fmt.Println()

	m.ctx.UI.Infof("Generates %s: a fixed line of text repeated until", gen.DefaultOutputPath)
	m.ctx.UI.Info("the file reaches roughly 10 GB, for the stream-processing exercises.")
	fmt.Println()

	cyan.Println(strings.Repeat("-", 70))
	fmt.Println()

	bold.Print("  [G] ")
	fmt.Println("Generate input file")

	bold.Print("  [S] ")
	fmt.Println("Show status")

	bold.Print("  [R] ")
	fmt.Println("Remove generated file")

	bold.Print("  [H] ")
	fmt.Println("Help")

	bold.Print("  [X] ")
	fmt.Println("Exit")
	fmt.Println()
}

// handleChoice processes the user's menu choice
func (m *Menu) handleChoice(choice string) error {
	switch choice {
	case "G":
		return m.generate()
	case "S":
		return m.ctx.ShowStatus()
	case "R":
		return m.remove()
	case "H":
		return m.showHelp()
	case "X":
		return ErrExit
	case "":
		return nil
	default:
		return fmt.Errorf("invalid choice: %s", choice)
	}
}

// generate runs the generator, asking first when a previous file would be
// overwritten. The non-interactive command path overwrites without asking.
func (m *Menu) generate() error {
	exists, err := m.ctx.FS.FileExists(gen.DefaultOutputPath)
	if err != nil {
		return err
	}

	if exists {
		overwrite, err := m.ctx.UI.PromptYesNo(
			fmt.Sprintf("%s already exists. Overwrite it?", gen.DefaultOutputPath), false)
		if err != nil {
			return err
		}
		if !overwrite {
			m.ctx.UI.Warning("Generation cancelled")
			return nil
		}
	}

	m.ctx.UI.Info("Writing file, this can take a while...")
	return m.ctx.Generate()
}

func (m *Menu) remove() error {
	confirm, err := m.ctx.UI.PromptYesNo(
		fmt.Sprintf("Remove %s?", gen.DefaultOutputPath), false)
	if err != nil {
		return err
	}
	if !confirm {
		m.ctx.UI.Warning("Removal cancelled")
		return nil
	}

	return m.ctx.RemoveFile()
}

func (m *Menu) showHelp() error {
	g := gen.New()

	m.ctx.UI.Header("Help")
	m.ctx.UI.Printf("The generator writes the same %d-byte line %d times,", len(g.Line), g.NumLines())
	m.ctx.UI.Printf("producing a %d-byte file at %s.", g.PlannedBytes(), g.OutputPath)
	m.ctx.UI.Print("")
	m.ctx.UI.Print("The file size stays just under the 10 GB target because only whole")
	m.ctx.UI.Print("lines are written. An existing file is replaced, never appended to.")
	m.ctx.UI.Print("")

	return nil
}
