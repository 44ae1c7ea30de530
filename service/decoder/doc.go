// Package decoder classifies input lines. A flower line such as "aS" credits
// one flower of species a and size S. A design line such as "AS10a15b5c30"
// declares design A of size S capped at 10 a, 15 b and 5 c, 30 flowers in
// total. Any other line is unknown and ignored by callers.
package decoder
