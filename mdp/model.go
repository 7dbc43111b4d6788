package mdp

import "math"

// A Model evaluates the one-period dynamics of an inventory problem. All of
// its methods are pure functions of the configuration.
type Model struct {
	Config
}

// DemandWeight returns the probability weight of an integer demand level.
// The weight is the Normal density at d, used directly without renormalizing
// over the truncated support. Negative demand has weight 0.
func (m Model) DemandWeight(d int) float64 {
	if d < 0 {
		return 0
	}

	return normalPDF(float64(d), m.DemandMean, m.DemandStd)
}

// MaxDemand returns the largest demand level enumerated when taking
// expectations. Demand beyond mean + 4 std carries negligible weight.
func (m Model) MaxDemand() int {
	return int(m.DemandMean + 4*m.DemandStd)
}

// ImmediateReward returns the one-period reward for ordering action units at
// inventory level state while demand units are requested. Transport
// surcharges are not part of the reward; the episode simulator applies them
// separately.
func (m Model) ImmediateReward(state, action, demand int) float64 {
	sales := min(state, demand)
	revenue := float64(sales) * m.SellingPrice
	holding := float64(state) * m.HoldingCost

	ordering := 0.0
	if action > 0 {
		ordering = m.OrderCost + float64(action)*m.UnitOrderCost
	}

	stockout := float64(max(0, demand-state)) * m.StockoutCost

	return revenue - holding - ordering - stockout
}

// NextState returns the inventory level after the period, clamped to
// [0, MaxInventory].
func (m Model) NextState(state, action, demand int) int {
	next := state + action - demand
	if next < 0 {
		return 0
	}

	if next > m.MaxInventory {
		return m.MaxInventory
	}

	return next
}

func normalPDF(x, mean, std float64) float64 {
	exponent := -0.5 * math.Pow((x-mean)/std, 2)
	return 1.0 / (std * math.Sqrt(2*math.Pi)) * math.Exp(exponent)
}
