package main

import "strings"

// applyFilter keeps the records satisfying every condition (conjunctive
// AND), preserving their relative order. An empty condition list is the
// identity. All columns are resolved before any record is evaluated, so a
// bad column leaves nothing half-filtered.
func applyFilter(ds Dataset, conds []Condition) (Dataset, error) {
	cols := make([]int, len(conds))
	for i, c := range conds {
		idx, err := ds.Schema.Resolve(c.Column)
		if err != nil {
			return Dataset{}, err
		}
		cols[i] = idx
	}

	kept := make([]Record, 0, len(ds.Records))
	for _, rec := range ds.Records {
		match := true
		for i, c := range conds {
			if !evalCondition(rec[cols[i]], c) {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, rec)
		}
	}
	return Dataset{Schema: ds.Schema, Records: kept}, nil
}

// evalCondition tests one cell against one condition.
//
// The ~ operator is always a case-insensitive substring test on the
// formatted cell. For the remaining operators the literal drives the
// comparison mode: a numeric literal (unquoted number or bool) compares
// numerically when the cell also coerces to float64; a string literal, or
// a cell that does not coerce, falls back to case-sensitive strings.
// Quoting a literal therefore forces the string path. A null on either
// side satisfies only !=.
func evalCondition(v Value, c Condition) bool {
	if c.Op == OpContains {
		if v.IsNull() {
			return false
		}
		return strings.Contains(strings.ToLower(v.String()), strings.ToLower(c.Raw))
	}

	if v.IsNull() || c.Literal.IsNull() {
		return c.Op == OpNe
	}

	if c.Literal.Kind != KindString {
		if ln, ok := c.Literal.Numeric(); ok {
			if cn, ok := v.Numeric(); ok {
				return compareNumbers(cn, ln, c.Op)
			}
		}
	}
	return compareStrings(v.String(), c.Raw, c.Op)
}

func compareNumbers(a, b float64, op Operator) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	}
	return false
}

func compareStrings(a, b string, op Operator) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	}
	return false
}
