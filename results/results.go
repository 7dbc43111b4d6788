// Package results assembles the outputs of a solver run into one exportable
// result set.
package results

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stocklab/restock/mdp"
	"github.com/stocklab/restock/transport"
)

// A ResultSet bundles everything a solver run produces for external
// reporting and storage.
type ResultSet struct {
	Config         mdp.Config            `json:"config"`
	ValueFunction  []float64             `json:"value_function"`
	Policy         []int                 `json:"policy"`
	ReorderPoint   int                   `json:"reorder_point"`
	OrderUpTo      int                   `json:"order_up_to"`
	Convergence    mdp.ConvergenceRecord `json:"convergence"`
	TransportModes transport.Table       `json:"transport_modes"`
}

// Collect gathers the state of a solved Solver into a ResultSet. The value
// function and policy are copied, so a later Solve on the same solver does
// not reach into an already-collected result.
func Collect(
	solver *mdp.Solver,
	rec mdp.ConvergenceRecord,
	modes transport.Table,
) ResultSet {
	summary := solver.ReorderPolicy()

	values := make([]float64, len(solver.Values()))
	copy(values, solver.Values())

	policy := make([]int, len(solver.Policy()))
	copy(policy, solver.Policy())

	return ResultSet{
		Config:         solver.Model().Config,
		ValueFunction:  values,
		Policy:         policy,
		ReorderPoint:   summary.ReorderPoint,
		OrderUpTo:      summary.OrderUpTo,
		Convergence:    rec,
		TransportModes: modes,
	}
}

// WriteJSON writes the result set to a file as indented JSON.
func (r ResultSet) WriteJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export results: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("export results: %w", err)
	}

	return nil
}
