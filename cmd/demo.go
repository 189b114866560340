package cmd

import (
	"fmt"
	"io"

	"github.com/oashamkll/Myapp-02/internal/demo"
	"github.com/oashamkll/Myapp-02/internal/demo/scenarios"
	"github.com/spf13/cobra"
)

var (
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay scripted chatmock sessions",
	Long: `Replay scripted chatmock sessions against the real UI and print the frames.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print its frames to stdout`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print its frames to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	demoRunCmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default: scenario's own)")
	demoRunCmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default: scenario's own)")
	demoRunCmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-10s %s\n", s.Name, s.Description)
	}
}

func getScenario(name string) (*demo.Scenario, error) {
	found := scenarios.Get(name)
	if found == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'chatmock demo list' to see available scenarios", name)
	}

	// Copy so size overrides don't leak into the shared scenario
	scenario := *found
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return &scenario, nil
}

func runDemo(w io.Writer, name string) error {
	scenario, err := getScenario(name)
	if err != nil {
		return err
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	frames, err := demo.NewExecutor(execCfg).Run(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	fmt.Fprintf(w, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(w, f.Content)
	}
	return nil
}
