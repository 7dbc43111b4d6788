package mdp

import (
	"fmt"
	"math"
)

// A ConvergenceRecord reports how a value-iteration run terminated.
// Non-convergence is not an error. A run that exhausts its iteration budget
// leaves Converged false and the best-effort value function and policy in
// place.
type ConvergenceRecord struct {
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
	FinalDelta float64 `json:"final_delta"`

	// DeltaHistory holds the largest state-wise value change of every
	// sweep, in sweep order.
	DeltaHistory []float64 `json:"delta_history"`
}

// A Solver computes the optimal replenishment policy of an inventory problem
// by value iteration.
//
// A Solver is not safe for concurrent use. The value function, policy table,
// and Q-value table are allocated once and overwritten in place by each
// Solve call.
type Solver struct {
	model Model

	values  []float64
	policy  []int
	qValues [][]float64
}

// NewSolver creates a Solver for the given configuration. The value
// function starts at zero for every state.
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := cfg.MaxInventory + 1
	s := &Solver{
		model:   Model{cfg},
		values:  make([]float64, size),
		policy:  make([]int, size),
		qValues: make([][]float64, size),
	}

	for i := range s.qValues {
		s.qValues[i] = make([]float64, size)
	}

	return s, nil
}

// Model returns the one-period dynamics the solver operates on.
func (s *Solver) Model() Model {
	return s.model
}

// Values returns the value function, indexed by inventory level. After a
// converged Solve it approximates the optimal expected discounted return
// from each state.
func (s *Solver) Values() []float64 {
	return s.values
}

// Policy returns the policy table, indexed by inventory level. Entry i is
// the order quantity chosen in state i during the last sweep.
func (s *Solver) Policy() []int {
	return s.policy
}

// QValues returns the per-state, per-action expected values from the last
// sweep. The table is diagnostic; executing the policy only needs Policy.
func (s *Solver) QValues() [][]float64 {
	return s.qValues
}

// Solve runs value-iteration sweeps until the largest state-wise value
// change of a sweep falls below epsilon, or until maxIterations sweeps have
// run. The arguments are validated before any state is touched.
func (s *Solver) Solve(epsilon float64, maxIterations int) (ConvergenceRecord, error) {
	if epsilon <= 0 {
		return ConvergenceRecord{}, fmt.Errorf(
			"%w: epsilon must be positive, got %g", ErrInvalidConfig, epsilon)
	}

	if maxIterations < 1 {
		return ConvergenceRecord{}, fmt.Errorf(
			"%w: iteration budget must be at least 1, got %d",
			ErrInvalidConfig, maxIterations)
	}

	rec := ConvergenceRecord{}

	for iteration := 0; iteration < maxIterations; iteration++ {
		delta := 0.0

		for state := 0; state <= s.model.MaxInventory; state++ {
			newValue, bestAction := s.bellmanUpdate(state)
			delta = math.Max(delta, math.Abs(s.values[state]-newValue))

			// The sweep is in place: higher states of the same sweep
			// must see this update.
			s.values[state] = newValue
			s.policy[state] = bestAction
		}

		rec.DeltaHistory = append(rec.DeltaHistory, delta)
		rec.Iterations = iteration + 1
		rec.FinalDelta = delta

		if delta < epsilon {
			rec.Converged = true
			break
		}
	}

	return rec, nil
}

// bellmanUpdate applies the Bellman optimality operator to one state,
// recording the expected value of every feasible action in the Q-value
// table. Ties favor the smallest order quantity.
func (s *Solver) bellmanUpdate(state int) (float64, int) {
	maxValue := math.Inf(-1)
	bestAction := 0

	maxAction := s.model.MaxInventory - state
	maxDemand := s.model.MaxDemand()

	for action := 0; action <= maxAction; action++ {
		expected := 0.0

		for demand := 0; demand <= maxDemand; demand++ {
			weight := s.model.DemandWeight(demand)
			reward := s.model.ImmediateReward(state, action, demand)
			next := s.model.NextState(state, action, demand)

			expected += weight * (reward + s.model.Gamma*s.values[next])
		}

		s.qValues[state][action] = expected

		if expected > maxValue {
			maxValue = expected
			bestAction = action
		}
	}

	return maxValue, bestAction
}
