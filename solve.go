package main

// _countFresh reports how many IDs fall within any of the ranges.
func _countFresh(inv *Inventory) uint64 {
	s := inv.RangeSet()
	n := uint64(0)
	for _, id := range inv.IDs {
		if s.Contains(id) {
			n++
		}
	}
	return n
}

// _countCovered reports how many distinct IDs the ranges cover.
func _countCovered(inv *Inventory) uint64 {
	s := inv.RangeSet()
	return s.CoveredLength()
}

var _parts = [...]func(*Inventory) uint64{
	1: _countFresh,
	2: _countCovered,
}
