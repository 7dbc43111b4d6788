package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stocklab/restock/datarecording"
	"github.com/stocklab/restock/episode"
	"github.com/stocklab/restock/mdp"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Solve the problem and roll the policy forward under sampled demand",
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	addConfigFlags(simulateCmd)

	flags := simulateCmd.Flags()
	flags.Float64("epsilon", 0.01, "convergence tolerance")
	flags.Int("max-iterations", 1000, "value-iteration sweep budget")
	flags.Int("initial-state", 50, "inventory level at the start of the episode")
	flags.Int("periods", 30, "number of periods to simulate")
	flags.String("mode", "truck", "transport mode used for every order")
	flags.Int64("seed", 0, "demand sampler seed (0 uses the current time)")
	flags.String("record", "", "record the trajectory into a SQLite database at this path")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	solver, err := mdp.NewSolver(cfg)
	if err != nil {
		return err
	}

	epsilon, _ := cmd.Flags().GetFloat64("epsilon")
	maxIterations, _ := cmd.Flags().GetInt("max-iterations")

	fmt.Println("Running value iteration...")

	rec, err := solver.Solve(epsilon, maxIterations)
	if err != nil {
		return err
	}

	printConvergence(rec)

	modes, err := loadTransportTable(cmd)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sampler := episode.NewNormalSampler(cfg.DemandMean, cfg.DemandStd, seed)
	sim := episode.NewSimulator(solver, sampler, modes)

	initialState, _ := cmd.Flags().GetInt("initial-state")
	periods, _ := cmd.Flags().GetInt("periods")
	mode, _ := cmd.Flags().GetString("mode")

	fmt.Printf("\nSimulating %d periods from state %d (%s)...\n",
		periods, initialState, mode)

	result, err := sim.Simulate(initialState, periods, mode)
	if err != nil {
		return err
	}

	fmt.Printf("  Total reward:   %.2f\n", result.TotalReward)
	fmt.Printf("  Average reward: %.2f\n", result.AverageReward)

	recordPath, _ := cmd.Flags().GetString("record")
	if recordPath != "" {
		recorder := datarecording.New(recordPath)
		runLog := datarecording.NewRunLog(recorder)
		runLog.RecordSolve(solver, rec)
		runLog.RecordEpisode(result)
		recorder.Flush()

		fmt.Printf("Run %s recorded to %s.sqlite3\n",
			runLog.RunID(), recordPath)
	}

	return nil
}
