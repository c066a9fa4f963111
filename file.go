package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const _maxLineSize = 1024

// Inventory is the parsed puzzle input: a batch of ranges followed by a
// batch of IDs to test against them.
type Inventory struct {
	Ranges []Range
	IDs    []uint64
}

// RangeSet coalesces the ranges of the inventory.
func (inv *Inventory) RangeSet() (s RangeSet) {
	for _, r := range inv.Ranges {
		s.Insert(r)
	}
	return
}

func _loadInventory(name string) (inv *Inventory, err error) {
	if name == "-" {
		return _parseInventory(os.Stdin, "<stdin>")
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer file.Close()
	return _parseInventory(file, name)
}

func _parseInventory(r io.Reader, name string) (*Inventory, error) {
	var (
		inv    Inventory
		lineNo int
		inIDs  bool
	)

	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineSize)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())

		if line == "" {
			if !inIDs && len(inv.Ranges) > 0 {
				inIDs = true
			}
			continue
		}

		if !inIDs {
			rng, err := _parseRange(line)
			if err != nil {
				return nil, errors.Wrapf(err, "%v:%v", name, lineNo)
			}
			inv.Ranges = append(inv.Ranges, rng)
			continue
		}

		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%v:%v: bad ID", name, lineNo)
		}
		inv.IDs = append(inv.IDs, id)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %v", name)
	}
	return &inv, nil
}

func _parseRange(line string) (r Range, err error) {
	i := strings.IndexByte(line, '-')
	if i < 0 {
		return r, errors.Errorf("range %q: missing '-'", line)
	}
	r.Low, err = strconv.ParseUint(strings.TrimSpace(line[:i]), 10, 64)
	if err != nil {
		return r, errors.Wrapf(err, "range %q: bad start", line)
	}
	r.High, err = strconv.ParseUint(strings.TrimSpace(line[i+1:]), 10, 64)
	if err != nil {
		return r, errors.Wrapf(err, "range %q: bad end", line)
	}
	if r.Low > r.High {
		return r, errors.Errorf("range %q: start is greater than end", line)
	}
	return r, nil
}
