package mdp

import "math"

// A ReorderPolicy is the (s, S) summary of a solved policy table: reorder
// when inventory drops to the reorder point, refill towards the order-up-to
// level.
type ReorderPolicy struct {
	ReorderPoint int
	OrderUpTo    int
}

// ReorderPolicy derives a heuristic (s, S) description from the policy
// table. The reorder point is the highest state that still orders, and the
// order-up-to level is the rounded mean of state+action over all ordering
// states. The summary is best-effort; it is not a structural property of
// the exact per-state policy.
//
// When no state orders at all, the summary falls back to MaxInventory/3 and
// 2*MaxInventory/3.
func (s *Solver) ReorderPolicy() ReorderPolicy {
	reorderPoint := -1
	orderUpToSum := 0
	orderingStates := 0

	for state := 0; state <= s.model.MaxInventory; state++ {
		if s.policy[state] > 0 {
			reorderPoint = max(reorderPoint, state)
			orderUpToSum += state + s.policy[state]
			orderingStates++
		}
	}

	if orderingStates == 0 {
		return ReorderPolicy{
			ReorderPoint: s.model.MaxInventory / 3,
			OrderUpTo:    2 * s.model.MaxInventory / 3,
		}
	}

	orderUpTo := int(math.Round(
		float64(orderUpToSum) / float64(orderingStates)))

	return ReorderPolicy{
		ReorderPoint: reorderPoint,
		OrderUpTo:    orderUpTo,
	}
}
