// ABOUTME: CLI commands to read and flip the dark mode preference
// ABOUTME: The flag is stored alongside the rest of the app state
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewThemeCmd creates the theme command group
func NewThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle dark mode",
		RunE:  runThemeShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		RunE:  runThemeShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			return printTheme(cmd, a.controller.ToggleTheme())
		},
	})

	return cmd
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return printTheme(cmd, a.controller.DarkMode())
}

func printTheme(cmd *cobra.Command, dark bool) error {
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), map[string]bool{"isDarkMode": dark})
	}
	theme := "light"
	if dark {
		theme = "dark"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
	return nil
}
