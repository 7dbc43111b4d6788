package cmd

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/stocklab/restock/datarecording"
	"github.com/stocklab/restock/mdp"
	"github.com/stocklab/restock/results"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the optimal replenishment policy by value iteration",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	addConfigFlags(solveCmd)

	flags := solveCmd.Flags()
	flags.Float64("epsilon", 0.01, "convergence tolerance")
	flags.Int("max-iterations", 1000, "value-iteration sweep budget")
	flags.Int("show", 20, "number of policy rows to print")
	flags.String("export", "", "write the result set to this JSON file")
	flags.String("charts", "", "write convergence/policy charts to this HTML file")
	flags.String("record", "", "record the run into a SQLite database at this path")
}

func runSolve(cmd *cobra.Command, _ []string) error {
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

	summary := solver.ReorderPolicy()
	fmt.Println("\nOptimal (s, S) policy:")
	fmt.Printf("  s (reorder point):     %d\n", summary.ReorderPoint)
	fmt.Printf("  S (order-up-to level): %d\n", summary.OrderUpTo)

	show, _ := cmd.Flags().GetInt("show")
	printPolicy(solver, show)

	return writeOutputs(cmd, solver, rec)
}

func printConvergence(rec mdp.ConvergenceRecord) {
	fmt.Println("\nConvergence:")

	if rec.Converged {
		fmt.Printf("  Converged:   %v\n", aurora.Green("yes"))
	} else {
		fmt.Printf("  Converged:   %v\n", aurora.Red("no"))
	}

	fmt.Printf("  Iterations:  %d\n", rec.Iterations)
	fmt.Printf("  Final delta: %.6f\n", rec.FinalDelta)
}

func printPolicy(solver *mdp.Solver, maxStates int) {
	policy := solver.Policy()
	values := solver.Values()

	rows := min(maxStates, len(policy))

	fmt.Printf("\nPolicy (first %d states):\n", rows)
	fmt.Printf("%8s %12s %15s\n", "State", "Action", "Value")
	fmt.Println("-----------------------------------")

	for state := 0; state < rows; state++ {
		fmt.Printf("%8d %12d %15.2f\n", state, policy[state], values[state])
	}
}

// writeOutputs handles the --export, --charts, and --record flags.
func writeOutputs(
	cmd *cobra.Command,
	solver *mdp.Solver,
	rec mdp.ConvergenceRecord,
) error {
	exportPath, _ := cmd.Flags().GetString("export")
	chartsPath, _ := cmd.Flags().GetString("charts")
	recordPath, _ := cmd.Flags().GetString("record")

	if exportPath == "" && chartsPath == "" && recordPath == "" {
		return nil
	}

	modes, err := loadTransportTable(cmd)
	if err != nil {
		return err
	}

	set := results.Collect(solver, rec, modes)

	if exportPath != "" {
		if err := set.WriteJSON(exportPath); err != nil {
			return err
		}

		fmt.Printf("\nResults exported to %s\n", exportPath)
	}

	if chartsPath != "" {
		if err := set.RenderCharts(chartsPath); err != nil {
			return err
		}

		fmt.Printf("Charts written to %s\n", chartsPath)
	}

	if recordPath != "" {
		recorder := datarecording.New(recordPath)
		runLog := datarecording.NewRunLog(recorder)
		runLog.RecordSolve(solver, rec)
		recorder.Flush()

		fmt.Printf("Run %s recorded to %s.sqlite3\n",
			runLog.RunID(), recordPath)
	}

	return nil
}
