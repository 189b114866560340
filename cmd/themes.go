package cmd

import (
	"fmt"
	"io"

	"github.com/oashamkll/Myapp-02/internal/ui"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		printThemes(cmd.OutOrStdout(), cfg.GetTheme())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// printThemes writes one theme per line, marking the active one with '*'
func printThemes(w io.Writer, active string) {
	if active == "" {
		active = string(ui.DefaultTheme)
	}
	for _, name := range ui.ThemeNames() {
		marker := " "
		if string(name) == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", marker, name, ui.GetTheme(name).Name)
	}
}
