package main

import (
	"fmt"
	"sort"
	"strings"
)

// SortDirection specifies ascending or descending order.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func parseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("sort order must be asc or desc, got %q", s)
}

// applySort returns a new Dataset with records stably reordered by the
// resolved column. Descending order inverts the comparator under the same
// stable sort, so equal keys keep their original relative order in both
// directions. Nulls sort as the lowest value.
func applySort(ds Dataset, column string, dir SortDirection) (Dataset, error) {
	col, err := ds.Schema.Resolve(column)
	if err != nil {
		return Dataset{}, err
	}

	out := make([]Record, len(ds.Records))
	copy(out, ds.Records)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i][col], out[j][col])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return Dataset{Schema: ds.Schema, Records: out}, nil
}

// compareValues orders two cells: nulls lowest, then numerically when both
// sides coerce, then by formatted string.
func compareValues(a, b Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return -1
	case b.IsNull():
		return 1
	}
	if an, ok := a.Numeric(); ok {
		if bn, ok := b.Numeric(); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(a.String(), b.String())
}
