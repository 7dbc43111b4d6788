package datarecording

import (
	"github.com/rs/xid"

	"github.com/stocklab/restock/episode"
	"github.com/stocklab/restock/mdp"
)

// Table names used by RunLog.
const (
	PolicyTable     = "policy_entries"
	SweepTable      = "sweep_deltas"
	TrajectoryTable = "trajectory_steps"
)

// A PolicyEntry is one state of a solved policy table.
type PolicyEntry struct {
	RunID  string
	State  int
	Action int
	Value  float64
}

// A SweepEntry is the convergence delta of one value-iteration sweep.
type SweepEntry struct {
	RunID string
	Sweep int
	Delta float64
}

// A TrajectoryEntry is one period of a simulated episode.
type TrajectoryEntry struct {
	RunID     string
	Period    int
	State     int
	Action    int
	Demand    int
	Reward    float64
	NextState int
}

// A RunLog writes solver runs and simulated episodes into a Recorder under
// a shared run ID, so several runs can land in the same database.
type RunLog struct {
	recorder Recorder
	runID    string
}

// NewRunLog creates a RunLog with a fresh run ID and makes sure the backing
// tables exist.
func NewRunLog(recorder Recorder) *RunLog {
	l := &RunLog{
		recorder: recorder,
		runID:    xid.New().String(),
	}

	recorder.CreateTable(PolicyTable, PolicyEntry{})
	recorder.CreateTable(SweepTable, SweepEntry{})
	recorder.CreateTable(TrajectoryTable, TrajectoryEntry{})

	return l
}

// RunID returns the identifier shared by all rows this log writes.
func (l *RunLog) RunID() string {
	return l.runID
}

// RecordSolve stores the solved policy, the value function, and the
// per-sweep convergence deltas.
func (l *RunLog) RecordSolve(solver *mdp.Solver, rec mdp.ConvergenceRecord) {
	values := solver.Values()

	for state, action := range solver.Policy() {
		l.recorder.InsertData(PolicyTable, PolicyEntry{
			RunID:  l.runID,
			State:  state,
			Action: action,
			Value:  values[state],
		})
	}

	for sweep, delta := range rec.DeltaHistory {
		l.recorder.InsertData(SweepTable, SweepEntry{
			RunID: l.runID,
			Sweep: sweep + 1,
			Delta: delta,
		})
	}
}

// RecordEpisode stores every step of a simulated trajectory.
func (l *RunLog) RecordEpisode(result episode.Result) {
	for _, step := range result.Trajectory {
		l.recorder.InsertData(TrajectoryTable, TrajectoryEntry{
			RunID:     l.runID,
			Period:    step.Period,
			State:     step.State,
			Action:    step.Action,
			Demand:    step.Demand,
			Reward:    step.Reward,
			NextState: step.NextState,
		})
	}
}
