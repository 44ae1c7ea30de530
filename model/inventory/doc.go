// Package inventory holds the flower ledger shared by every design of a
// planning session. Unknown combinations read as zero and removals saturate at
// zero, so the ledger never reports an error.
package inventory
