package decoder

import (
	"github.com/viant/parsly"
)

// Token codes start at 1 so they never collide with parsly.EOF.
const (
	upperCode = iota + 1
	lowerCode
	numberCode
)

var (
	upperToken  = parsly.NewToken(upperCode, "Uppercase", newRangeMatcher('A', 'Z'))
	lowerToken  = parsly.NewToken(lowerCode, "Lowercase", newRangeMatcher('a', 'z'))
	numberToken = parsly.NewToken(numberCode, "Number", &numberMatcher{})
)

func newRangeMatcher(from, to byte) parsly.Matcher {
	return &rangeMatcher{from: from, to: to}
}

// rangeMatcher matches a single byte within [from, to]
type rangeMatcher struct {
	from byte
	to   byte
}

func (m *rangeMatcher) Match(cursor *parsly.Cursor) int {
	if cursor.Pos >= cursor.InputSize {
		return 0
	}
	if c := cursor.Input[cursor.Pos]; c >= m.from && c <= m.to {
		return 1
	}
	return 0
}

// numberMatcher matches a run of ASCII digits
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if !isDigit(cursor.Input[i]) {
			break
		}
		matched++
	}
	return matched
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
