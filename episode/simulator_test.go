package episode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stocklab/restock/mdp"
	"github.com/stocklab/restock/transport"
)

func solvedFixture(t *testing.T) *mdp.Solver {
	t.Helper()

	solver, err := mdp.NewSolver(mdp.DefaultConfig())
	require.NoError(t, err)

	rec, err := solver.Solve(0.01, 1000)
	require.NoError(t, err)
	require.True(t, rec.Converged)

	return solver
}

func TestSimulateTrajectoryShape(t *testing.T) {
	solver := solvedFixture(t)
	sampler := NewNormalSampler(10, 3, 1)
	sim := NewSimulator(solver, sampler, transport.DefaultTable())

	result, err := sim.Simulate(50, 30, "truck")
	require.NoError(t, err)

	assert.Len(t, result.Trajectory, 30)

	cfg := solver.Model().Config
	total := 0.0
	state := 50

	for i, step := range result.Trajectory {
		assert.Equal(t, i, step.Period)
		assert.Equal(t, state, step.State)
		assert.Equal(t, solver.Policy()[state], step.Action)
		assert.Equal(t,
			solver.Model().NextState(step.State, step.Action, step.Demand),
			step.NextState)
		assert.LessOrEqual(t, step.NextState, cfg.MaxInventory)
		assert.GreaterOrEqual(t, step.NextState, 0)

		total += step.Reward
		state = step.NextState
	}

	assert.InDelta(t, total, result.TotalReward, 1e-9)
	assert.InDelta(t, total/30, result.AverageReward, 1e-9)
}

func TestSimulateZeroPeriods(t *testing.T) {
	solver := solvedFixture(t)
	sim := NewSimulator(solver,
		NewNormalSampler(10, 3, 1), transport.DefaultTable())

	_, err := sim.Simulate(50, 0, "truck")
	assert.ErrorIs(t, err, ErrNoPeriods)

	_, err = sim.Simulate(50, -3, "truck")
	assert.ErrorIs(t, err, ErrNoPeriods)
}

func TestSimulateInitialStateOutOfRange(t *testing.T) {
	solver := solvedFixture(t)
	sim := NewSimulator(solver,
		NewNormalSampler(10, 3, 1), transport.DefaultTable())

	_, err := sim.Simulate(-1, 10, "truck")
	assert.ErrorIs(t, err, mdp.ErrInvalidConfig)

	_, err = sim.Simulate(101, 10, "truck")
	assert.ErrorIs(t, err, mdp.ErrInvalidConfig)
}

func TestSimulateTransportSurcharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	solver := solvedFixture(t)

	// A fixed demand sequence makes the two runs comparable.
	sampler := NewMockSampler(ctrl)
	sampler.EXPECT().Sample().Return(10).AnyTimes()

	sim := NewSimulator(solver, sampler, transport.DefaultTable())

	// Start at zero so the policy orders immediately.
	withTruck, err := sim.Simulate(0, 1, "truck")
	require.NoError(t, err)
	require.Positive(t, withTruck.Trajectory[0].Action)

	withoutMode, err := sim.Simulate(0, 1, "teleporter")
	require.NoError(t, err)

	assert.InDelta(t, 100,
		withoutMode.TotalReward-withTruck.TotalReward, 1e-9)
}

func TestSimulateUnknownModeAppliesNoSurcharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	solver := solvedFixture(t)

	sampler := NewMockSampler(ctrl)
	sampler.EXPECT().Sample().Return(10).AnyTimes()

	sim := NewSimulator(solver, sampler, transport.DefaultTable())

	unknown, err := sim.Simulate(0, 1, "zeppelin")
	require.NoError(t, err)

	bare, err := sim.Simulate(0, 1, "")
	require.NoError(t, err)

	assert.InDelta(t, bare.TotalReward, unknown.TotalReward, 1e-9)
}

func TestNormalSampler(t *testing.T) {
	sampler := NewNormalSampler(10, 3, 42)

	sum := 0
	for i := 0; i < 10000; i++ {
		d := sampler.Sample()
		require.GreaterOrEqual(t, d, 0)
		sum += d
	}

	// The sample mean should sit near the configured mean.
	assert.InDelta(t, 10, float64(sum)/10000, 0.5)
}

func TestNormalSamplerClampsNegativeDraws(t *testing.T) {
	// A mean far below zero forces every raw draw negative.
	sampler := NewNormalSampler(-100, 1, 7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, sampler.Sample())
	}
}
