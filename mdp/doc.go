// Package mdp solves the single-product periodic-review inventory problem
// as a Markov Decision Process.
//
// The inventory level is the state, the order quantity is the action, and
// the demand in each period is drawn from a Normal distribution that is
// discretized onto the non-negative integers. A Solver runs value iteration
// over the full state space and exposes the value function, the per-state
// policy table, the Q-value table, and a heuristic (s, S) summary of the
// solved policy.
package mdp
