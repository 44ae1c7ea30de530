// Package planner holds the flower ledger and the design list of one planning
// session and repeatedly sweeps the designs through the allocator until a
// sweep makes no bouquet. Designs are never removed, so a design that succeeds
// in one sweep is tried again in the next one against the reduced ledger.
package planner
