package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀ ▀█▀ █▀▀ █▀█ █▀▀ █▀█ █▀█ █▀▄▀█"
	logoText2 = "▄█  █  ██▄ █▀▀ █▀  █▄█ █▀▄ █ ▀ █"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stepform",
	Short: "Multi-step form wizard for the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

stepform runs a multi-step form one step at a time, keeping every step's
values as you move back and forth. The current step is tracked either in
memory or in a navigation history, so alt+left and alt+right walk back
through the steps you visited.`

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
}
