package episode

import (
	"errors"
	"fmt"

	"github.com/stocklab/restock/mdp"
	"github.com/stocklab/restock/transport"
)

// ErrNoPeriods is returned when a simulation is requested for less than one
// period; the average reward would divide by zero.
var ErrNoPeriods = errors.New("period count must be at least 1")

// A Step records one simulated period.
type Step struct {
	Period    int
	State     int
	Action    int
	Demand    int
	Reward    float64
	NextState int
}

// A Result is the outcome of one simulated episode. The trajectory is owned
// by the run that produced it and is not mutated afterwards.
type Result struct {
	Trajectory    []Step
	TotalReward   float64
	AverageReward float64
}

// A Simulator rolls a solved policy forward under sampled demand. It reads
// the solver's policy table and must not run concurrently with a Solve.
type Simulator struct {
	solver  *mdp.Solver
	sampler Sampler
	modes   transport.Table
}

// NewSimulator creates a Simulator that executes the given solver's policy.
// The transport table is consulted per order for the flat shipping
// surcharge.
func NewSimulator(
	solver *mdp.Solver,
	sampler Sampler,
	modes transport.Table,
) *Simulator {
	return &Simulator{
		solver:  solver,
		sampler: sampler,
		modes:   modes,
	}
}

// Simulate runs the policy for the requested number of periods starting from
// initialState, shipping every order with the named transport mode. An
// unknown mode name applies no surcharge.
func (s *Simulator) Simulate(
	initialState, periods int,
	mode string,
) (Result, error) {
	if periods < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNoPeriods, periods)
	}

	model := s.solver.Model()
	if initialState < 0 || initialState > model.MaxInventory {
		return Result{}, fmt.Errorf(
			"%w: initial state %d outside [0, %d]",
			mdp.ErrInvalidConfig, initialState, model.MaxInventory)
	}

	surcharge := 0.0
	if m, ok := s.modes[mode]; ok {
		surcharge = m.Cost
	}

	policy := s.solver.Policy()
	trajectory := make([]Step, 0, periods)
	state := initialState
	total := 0.0

	for period := 0; period < periods; period++ {
		action := policy[state]
		demand := s.sampler.Sample()

		reward := model.ImmediateReward(state, action, demand)
		if action > 0 {
			reward -= surcharge
		}

		next := model.NextState(state, action, demand)

		trajectory = append(trajectory, Step{
			Period:    period,
			State:     state,
			Action:    action,
			Demand:    demand,
			Reward:    reward,
			NextState: next,
		})

		total += reward
		state = next
	}

	return Result{
		Trajectory:    trajectory,
		TotalReward:   total,
		AverageReward: total / float64(periods),
	}, nil
}
