package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveExample(t *testing.T) {
	inv, err := _parseInventory(strings.NewReader(_example), "example")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), _countFresh(inv))
	assert.Equal(t, uint64(14), _countCovered(inv))
}

func TestSolveEdges(t *testing.T) {
	tests := []struct {
		name    string
		inv     Inventory
		fresh   uint64
		covered uint64
	}{
		{"empty", Inventory{}, 0, 0},
		{"no ids", Inventory{Ranges: []Range{{1, 1}, {5, 6}}}, 0, 3},
		{"duplicate ids", Inventory{Ranges: []Range{{1, 3}}, IDs: []uint64{2, 2, 4}}, 2, 3},
		{"abutting ranges", Inventory{Ranges: []Range{{1, 5}, {6, 9}}, IDs: []uint64{5, 6, 10}}, 2, 9},
		{"nested ranges", Inventory{Ranges: []Range{{1, 100}, {20, 30}, {1, 100}}, IDs: []uint64{0, 50}}, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fresh, _countFresh(&tt.inv))
			assert.Equal(t, tt.covered, _countCovered(&tt.inv))
		})
	}
}
