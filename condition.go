package main

import (
	"fmt"
	"strings"
)

// Operator is a filter comparison operator.
type Operator string

const (
	OpEq       Operator = "=="
	OpNe       Operator = "!="
	OpGe       Operator = ">="
	OpLe       Operator = "<="
	OpGt       Operator = ">"
	OpLt       Operator = "<"
	OpContains Operator = "~"
)

// Two-character operators are listed before their one-character prefixes
// so the scan always matches the longest operator at a position.
var operators = []Operator{OpEq, OpNe, OpGe, OpLe, OpGt, OpLt, OpContains}

// Condition is one parsed filter term: column, operator, literal.
type Condition struct {
	Column  string
	Op      Operator
	Literal Value
	// Raw is the literal token as typed, used for substring matching.
	Raw string
}

// parseConditions splits a filter expression on commas and parses each
// segment into a Condition. Empty segments are skipped; an expression with
// no segments parses to an empty (identity) condition list.
func parseConditions(expr string) ([]Condition, error) {
	var conds []Condition
	for _, seg := range strings.Split(expr, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		cond, err := parseCondition(seg)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
	}
	return conds, nil
}

func parseCondition(seg string) (Condition, error) {
	op, at := findOperator(seg)
	if at < 0 {
		return Condition{}, fmt.Errorf("%w: %q (expected <col><op><value> with op one of == != >= <= > < ~)", ErrMalformedCondition, seg)
	}
	col := strings.TrimSpace(seg[:at])
	raw := strings.TrimSpace(seg[at+len(op):])
	if col == "" {
		return Condition{}, fmt.Errorf("%w: %q (missing column)", ErrMalformedCondition, seg)
	}
	if raw == "" && op != OpContains {
		return Condition{}, fmt.Errorf("%w: %q (missing value)", ErrMalformedCondition, seg)
	}
	lit, unquoted := parseLiteral(raw)
	return Condition{Column: col, Op: op, Literal: lit, Raw: unquoted}, nil
}

// findOperator locates the first operator occurrence in the segment,
// preferring the longest match at any position.
func findOperator(seg string) (Operator, int) {
	for i := 0; i < len(seg); i++ {
		for _, op := range operators {
			if strings.HasPrefix(seg[i:], string(op)) {
				return op, i
			}
		}
	}
	return "", -1
}

// parseLiteral coerces a raw literal token to a typed Value. Quoting with
// matching single or double quotes forces string interpretation; otherwise
// null/none, true/false, and numbers are recognized. It also returns the
// token with any quotes stripped.
func parseLiteral(raw string) (Value, string) {
	if len(raw) >= 2 && raw[0] == raw[len(raw)-1] && (raw[0] == '\'' || raw[0] == '"') {
		inner := raw[1 : len(raw)-1]
		return StringValue(inner), inner
	}
	switch strings.ToLower(raw) {
	case "null", "none":
		return NullValue(), raw
	}
	v := detectValue(raw)
	return v, raw
}
