package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/blocksim/blocksim/sim"
)

var (
	// CLI flags; the three simulation parameters themselves are positional
	seed           int64  // Master seed; 0 draws one from the OS entropy pool
	logLevel       string // Log verbosity level
	scenarioFile   string // Optional yaml file with scenario presets
	scenarioName   string // Preset name inside the scenario file
	reseedPerBlock bool   // Draw a fresh entropy seed before every block discovery
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "blocksim",
	Short: "Monte Carlo simulator for transaction confirmation delay",
}

// runCmd executes one simulation batch using the three positional
// parameters: arrival rate (tx/sec), blocks per run, number of runs.
var runCmd = &cobra.Command{
	Use:   "run <arrival-rate> <num-blocks> <num-runs>",
	Short: "Run the confirmation-delay simulation",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("arrival rate %q is not a number", args[0])
		}
		numBlocks, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("num blocks %q is not an integer", args[1])
		}
		numRuns, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("num runs %q is not an integer", args[2])
		}

		cfg := sim.DefaultConfig()
		if scenarioFile != "" {
			if err := ApplyScenario(scenarioFile, scenarioName, &cfg); err != nil {
				return err
			}
		}
		cfg.ArrivalRate = rate
		cfg.NumBlocks = numBlocks
		cfg.NumRuns = numRuns
		cfg.ReseedPerBlock = reseedPerBlock
		if err := cfg.Validate(); err != nil {
			return err
		}

		// A fixed master seed gives reproducible batches; otherwise every
		// seed comes from the OS entropy pool.
		var seeds sim.SeedSource
		if seed != 0 {
			seeds = sim.NewDerivedSeeds(seed)
		} else {
			seeds = sim.EntropySource{}
		}

		hist := sim.NewHistogram()
		s, err := sim.NewSimulator(cfg, hist, seeds)
		if err != nil {
			// Past validation, construction fails only when the entropy
			// source does.
			logrus.Fatalf("simulation aborted: %v", err)
		}

		logrus.Infof("Starting simulation with rate=%v tx/s, %d blocks/run, %d runs, capacity=%d bytes",
			rate, numBlocks, numRuns, cfg.CapacityBytes)

		fmt.Printf("initial TPS: %f, num blocks: %d, num simulations: %d\n-\n", rate, numBlocks, numRuns)

		if err := s.Run(); err != nil {
			logrus.Fatalf("simulation aborted: %v", err)
		}
		if err := sim.WriteReport(os.Stdout, hist); err != nil {
			logrus.Fatalf("writing report: %v", err)
		}

		logrus.Info("Simulation complete.")
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Master seed for the interval sampler (0 = draw from the OS entropy pool)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Yaml file with scenario presets")
	runCmd.Flags().StringVar(&scenarioName, "preset", "", "Preset name inside the scenario file")
	runCmd.Flags().BoolVar(&reseedPerBlock, "reseed-per-block", false, "Draw a fresh seed before every block discovery")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
