package allocator

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bouquet/model/design"
	"github.com/viant/bouquet/model/inventory"
)

func newLargeLedger() *inventory.Ledger {
	ledger := inventory.New()
	ledger.Add("a", "L", 6)
	ledger.Add("b", "L", 3)
	ledger.Add("c", "L", 2)
	return ledger
}

func TestService_Allocate(t *testing.T) {
	testCases := []struct {
		description string
		design      *design.Design
		expectOK    bool
		expectCode  string
		expectLeft  map[inventory.Species]map[inventory.Size]int
	}{
		{
			description: "first species covers the whole quantity",
			design:      design.New("A", "L", 4, design.Requirement{Species: "a", Max: 6}, design.Requirement{Species: "b", Max: 4}, design.Requirement{Species: "c", Max: 6}),
			expectOK:    true,
			expectCode:  "AL4a",
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 2}, "b": {"L": 3}, "c": {"L": 2}},
		},
		{
			description: "cap moves the rest to the second species",
			design:      design.New("A", "L", 4, design.Requirement{Species: "a", Max: 1}, design.Requirement{Species: "b", Max: 4}, design.Requirement{Species: "c", Max: 6}),
			expectOK:    true,
			expectCode:  "AL1a3b",
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 5}, "b": {"L": 0}, "c": {"L": 2}},
		},
		{
			description: "three species share the quantity",
			design:      design.New("A", "L", 4, design.Requirement{Species: "a", Max: 1}, design.Requirement{Species: "b", Max: 2}, design.Requirement{Species: "c", Max: 6}),
			expectOK:    true,
			expectCode:  "AL1a2b1c",
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 5}, "b": {"L": 1}, "c": {"L": 1}},
		},
		{
			description: "unknown species are infeasible",
			design:      design.New("A", "L", 4, design.Requirement{Species: "d", Max: 1}, design.Requirement{Species: "e", Max: 1}),
			expectOK:    false,
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 6}, "b": {"L": 3}, "c": {"L": 2}},
		},
		{
			description: "caps below total quantity are infeasible",
			design:      design.New("A", "L", 4, design.Requirement{Species: "a", Max: 1}, design.Requirement{Species: "b", Max: 1}, design.Requirement{Species: "c", Max: 1}),
			expectOK:    false,
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 6}, "b": {"L": 3}, "c": {"L": 2}},
		},
		{
			description: "other size is not used",
			design:      design.New("A", "S", 2, design.Requirement{Species: "a", Max: 2}),
			expectOK:    false,
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 6}, "b": {"L": 3}, "c": {"L": 2}},
		},
		{
			description: "stock below cap takes what is available",
			design:      design.New("A", "L", 5, design.Requirement{Species: "c", Max: 4}, design.Requirement{Species: "b", Max: 5}),
			expectOK:    true,
			expectCode:  "AL2c3b",
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 6}, "b": {"L": 0}, "c": {"L": 0}},
		},
		{
			description: "zero quantity yields name and size",
			design:      design.New("Z", "L", 0, design.Requirement{Species: "a", Max: 3}),
			expectOK:    true,
			expectCode:  "ZL",
			expectLeft:  map[inventory.Species]map[inventory.Size]int{"a": {"L": 6}, "b": {"L": 3}, "c": {"L": 2}},
		},
	}

	srv := New(WithLogger(testr.New(t)))
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ledger := newLargeLedger()
			actual, ok := srv.Allocate(tc.design, ledger)
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				require.NotNil(t, actual)
				assert.Equal(t, tc.expectCode, actual.Code())
				assert.Equal(t, tc.design.TotalQuantity, actual.Quantity())
			} else {
				assert.Nil(t, actual)
			}
			if diff := cmp.Diff(tc.expectLeft, ledger.Snapshot()); diff != "" {
				t.Errorf("ledger mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_Allocate_EmptyLedger(t *testing.T) {
	srv := New()
	ledger := inventory.New()
	aDesign := design.New("A", "L", 4, design.Requirement{Species: "d", Max: 1}, design.Requirement{Species: "e", Max: 1})
	actual, ok := srv.Allocate(aDesign, ledger)
	assert.False(t, ok)
	assert.Nil(t, actual)
	assert.Empty(t, ledger.Snapshot())
}

func TestService_Allocate_Deterministic(t *testing.T) {
	srv := New()
	aDesign := design.New("A", "L", 4, design.Requirement{Species: "a", Max: 1}, design.Requirement{Species: "b", Max: 2}, design.Requirement{Species: "c", Max: 6})
	var codes []string
	for i := 0; i < 3; i++ {
		actual, ok := srv.Allocate(aDesign, newLargeLedger())
		require.True(t, ok)
		codes = append(codes, actual.Code())
	}
	assert.Equal(t, []string{"AL1a2b1c", "AL1a2b1c", "AL1a2b1c"}, codes)
}

func TestService_Allocate_Conservation(t *testing.T) {
	srv := New()
	ledger := newLargeLedger()
	aDesign := design.New("A", "L", 3, design.Requirement{Species: "c", Max: 1}, design.Requirement{Species: "b", Max: 1}, design.Requirement{Species: "a", Max: 5})
	before := ledger.Total()
	actual, ok := srv.Allocate(aDesign, ledger)
	require.True(t, ok)
	assert.Equal(t, "AL1c1b1a", actual.Code())
	assert.Equal(t, aDesign.TotalQuantity, before-ledger.Total())
	assert.Equal(t, []Pick{{"c", "L", 1}, {"b", "L", 1}, {"a", "L", 1}}, actual.Picks)
}
