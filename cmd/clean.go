package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oashamkll/Myapp-02/internal/logger"
	"github.com/spf13/cobra"
)

var (
	skipConfirm bool
	resetConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files and optionally reset settings",
	Long: `Removes chatmock's debug log files. With --reset-config the config file is
deleted too, so the next run starts from the default theme and names.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetConfig, "reset-config", false, "Also delete the config file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout())
}

// runCleanWithReader allows injecting a reader and writer for testing
func runCleanWithReader(input io.Reader, out io.Writer) error {
	cfgFile := ""
	if resetConfig {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if path := cfg.FilePath(); fileExists(path) {
			cfgFile = path
		}
	}

	fmt.Fprintln(out, "This will clean:")
	fmt.Fprintf(out, "  - All log files matching %s*\n", logger.DefaultLogPath)
	if cfgFile != "" {
		fmt.Fprintf(out, "  - Config file %s\n", cfgFile)
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	configRemoved := false
	if cfgFile != "" {
		if err := os.Remove(cfgFile); err != nil {
			return fmt.Errorf("error removing config: %w", err)
		}
		configRemoved = true
	}

	fmt.Fprintln(out)
	if logsCleared == 0 && !configRemoved {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}
	fmt.Fprintln(out, "Cleaned:")
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	if configRemoved {
		fmt.Fprintln(out, "  - config reset to defaults")
	}
	return nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
