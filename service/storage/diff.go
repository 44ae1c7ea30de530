package storage

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
	"github.com/viant/bouquet/model/session"
)

// Compare returns how current differs from the previous content of the
// document called name. Identical content yields an empty change.
func Compare(name string, previous, current []byte, contextLines int) (*session.Change, error) {
	if bytes.Equal(previous, current) {
		return &session.Change{}, nil
	}
	if contextLines <= 0 {
		contextLines = 3
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(current)),
		FromFile: name + " (previous)",
		ToFile:   name + " (current)",
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %v: %w", name, err)
	}
	fileDiff, err := sgdiff.ParseFileDiff([]byte(patch))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff of %v: %w", name, err)
	}
	ret := &session.Change{Diff: patch, Hunks: len(fileDiff.Hunks)}
	for _, hunk := range fileDiff.Hunks {
		for _, line := range bytes.Split(hunk.Body, []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			switch line[0] {
			case '+':
				ret.Added++
			case '-':
				ret.Removed++
			}
		}
	}
	return ret, nil
}
