package mdp

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Solver", func() {
	var (
		cfg    Config
		solver *Solver
	)

	BeforeEach(func() {
		cfg = DefaultConfig()

		var err error
		solver, err = NewSolver(cfg)
		Expect(err).ToNot(HaveOccurred())
	})

	It("should reject invalid configurations", func() {
		bad := cfg
		bad.MaxInventory = 0
		_, err := NewSolver(bad)
		Expect(err).To(MatchError(ErrInvalidConfig))

		bad = cfg
		bad.DemandStd = 0
		_, err = NewSolver(bad)
		Expect(err).To(MatchError(ErrInvalidConfig))

		bad = cfg
		bad.Gamma = 1.2
		_, err = NewSolver(bad)
		Expect(err).To(MatchError(ErrInvalidConfig))
	})

	It("should reject a non-positive epsilon", func() {
		_, err := solver.Solve(0, 10)
		Expect(err).To(MatchError(ErrInvalidConfig))
	})

	It("should reject a non-positive iteration budget", func() {
		_, err := solver.Solve(0.01, 0)
		Expect(err).To(MatchError(ErrInvalidConfig))
	})

	It("should start with a zero value function", func() {
		for _, v := range solver.Values() {
			Expect(v).To(BeZero())
		}
	})

	It("should converge on the reference scenario", func() {
		rec, err := solver.Solve(0.01, 1000)

		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Converged).To(BeTrue())
		Expect(rec.Iterations).To(Equal(77))
		Expect(rec.FinalDelta).To(BeNumerically("<", 0.01))
		Expect(rec.DeltaHistory).To(HaveLen(rec.Iterations))
	})

	It("should keep actions within remaining capacity", func() {
		_, err := solver.Solve(0.01, 1000)
		Expect(err).ToNot(HaveOccurred())

		for state, action := range solver.Policy() {
			Expect(action).To(BeNumerically(">=", 0))
			Expect(action).To(BeNumerically("<=", cfg.MaxInventory-state))
		}
	})

	It("should never order at full capacity", func() {
		_, err := solver.Solve(0.01, 1000)
		Expect(err).ToNot(HaveOccurred())

		Expect(solver.Policy()[cfg.MaxInventory]).To(Equal(0))
	})

	It("should extract the reference (s, S) summary", func() {
		_, err := solver.Solve(0.01, 1000)
		Expect(err).ToNot(HaveOccurred())

		summary := solver.ReorderPolicy()
		Expect(summary.ReorderPoint).To(
			BeNumerically("<=", summary.OrderUpTo))
		Expect(summary.ReorderPoint).To(Equal(20))
		Expect(summary.OrderUpTo).To(Equal(37))
	})

	It("should report non-convergence when the budget runs out", func() {
		rec, err := solver.Solve(0.01, 1)

		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Converged).To(BeFalse())
		Expect(rec.Iterations).To(Equal(1))
		Expect(rec.DeltaHistory).To(HaveLen(1))

		// The best-effort policy is still usable.
		for state, action := range solver.Policy() {
			Expect(action).To(BeNumerically("<=", cfg.MaxInventory-state))
		}
	})

	It("should record Q-values for every feasible action", func() {
		_, err := solver.Solve(0.01, 50)
		Expect(err).ToNot(HaveOccurred())

		q := solver.QValues()
		Expect(q).To(HaveLen(cfg.MaxInventory + 1))

		for state := 0; state <= cfg.MaxInventory; state++ {
			best := solver.Policy()[state]
			Expect(q[state][best]).To(
				BeNumerically("~", solver.Values()[state], 1e-9))
		}
	})

	It("should fall back to the default summary when no state orders", func() {
		// Ordering is never worthwhile when the fixed cost dwarfs the
		// selling price.
		noOrder := cfg
		noOrder.OrderCost = 1e9

		s, err := NewSolver(noOrder)
		Expect(err).ToNot(HaveOccurred())

		_, err = s.Solve(0.01, 200)
		Expect(err).ToNot(HaveOccurred())

		summary := s.ReorderPolicy()
		Expect(summary.ReorderPoint).To(Equal(noOrder.MaxInventory / 3))
		Expect(summary.OrderUpTo).To(Equal(2 * noOrder.MaxInventory / 3))
	})
})
