// Package progress keeps aggregated counters of a planning session: sweeps
// run, bouquets made, infeasible attempts and flowers consumed. The tracker
// travels in the context so any component can report without a registry.
package progress
