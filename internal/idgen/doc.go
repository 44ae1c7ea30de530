// Package idgen produces planning session identifiers. Callers treat them as
// opaque strings; tests may replace NewFunc.
package idgen
