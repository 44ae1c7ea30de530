// Package allocator implements the greedy per-design allocation. A design is
// filled by walking its requirements in priority order, taking as many flowers
// of each species as the cap, the stock and the outstanding quantity allow.
// The ledger is debited only when the whole quantity can be covered.
package allocator
