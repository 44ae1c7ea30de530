package inventory

// Species identifies a flower species, a single lowercase letter in the input notation.
type Species string

// Size identifies a flower size class, a single uppercase letter in the input notation.
type Size string

// Ledger keeps the number of available flowers per species and size.
// Counts never drop below zero. A Ledger is not safe for concurrent use;
// callers that share one must serialise access.
type Ledger struct {
	flowers map[Species]map[Size]int
}

// Amount returns the number of available flowers. A combination that was
// never added yields 0.
func (l *Ledger) Amount(species Species, size Size) int {
	if l == nil {
		return 0
	}
	return l.flowers[species][size]
}

// Add puts amount flowers into the ledger.
func (l *Ledger) Add(species Species, size Size, amount int) {
	if l.flowers == nil {
		l.flowers = make(map[Species]map[Size]int)
	}
	sizes, ok := l.flowers[species]
	if !ok {
		sizes = make(map[Size]int)
		l.flowers[species] = sizes
	}
	sizes[size] += amount
}

// Remove takes amount flowers out of the ledger, clamping the count at zero.
// Removing a combination that was never added is a no-op.
func (l *Ledger) Remove(species Species, size Size, amount int) {
	sizes, ok := l.flowers[species]
	if !ok {
		return
	}
	count, ok := sizes[size]
	if !ok {
		return
	}
	count -= amount
	if count < 0 {
		count = 0
	}
	sizes[size] = count
}

// Total returns the number of flowers across all species and sizes.
func (l *Ledger) Total() int {
	if l == nil {
		return 0
	}
	total := 0
	for _, sizes := range l.flowers {
		for _, count := range sizes {
			total += count
		}
	}
	return total
}

// Snapshot returns a deep copy of the underlying counts.
func (l *Ledger) Snapshot() map[Species]map[Size]int {
	ret := make(map[Species]map[Size]int)
	if l == nil {
		return ret
	}
	for species, sizes := range l.flowers {
		copied := make(map[Size]int, len(sizes))
		for size, count := range sizes {
			copied[size] = count
		}
		ret[species] = copied
	}
	return ret
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{flowers: l.Snapshot()}
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{flowers: make(map[Species]map[Size]int)}
}
