package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind identifies the scalar type held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// Value is one cell of a Record: a string, number, boolean, or null.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func NullValue() Value            { return Value{Kind: KindNull} }
func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

// String formats the value for display, export, and string comparison.
// Null formats as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Numeric reports the value as a float64 where it coerces: numbers
// directly, booleans as 1/0, and strings that parse as numbers.
func (v Value) Numeric() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// detectValue infers a typed Value from a raw text cell, e.g. a CSV field.
func detectValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NullValue()
	}
	switch strings.ToLower(s) {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberValue(f)
	}
	return StringValue(s)
}

// DataType is the inferred type of a column.
type DataType int

const (
	TypeString DataType = iota
	TypeNumber
	TypeBool
)

func (t DataType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	default:
		return "string"
	}
}

// Column is one (name, type) entry of a Schema.
type Column struct {
	Name string
	Type DataType
}

// Schema is the ordered column list shared by all records of a Dataset.
type Schema []Column

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Resolve matches a column name case-insensitively and returns its index.
func (s Schema) Resolve(name string) (int, error) {
	for i, c := range s {
		if strings.EqualFold(c.Name, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (have: %s)", ErrColumnNotFound, name, strings.Join(s.Names(), ", "))
}

// Record is one row, positionally aligned with its Dataset's Schema.
type Record []Value

// Dataset is an ordered sequence of Records sharing one Schema.
type Dataset struct {
	Schema  Schema
	Records []Record
}

func (d Dataset) Len() int { return len(d.Records) }

// Slice returns a Dataset over records [from, to), sharing the schema.
func (d Dataset) Slice(from, to int) Dataset {
	return Dataset{Schema: d.Schema, Records: d.Records[from:to]}
}

// inferSchema derives a Schema from column names and the records' cells.
// A column's type is its dominant non-null cell kind; columns with only
// null cells default to string.
func inferSchema(names []string, records []Record) Schema {
	schema := make(Schema, len(names))
	for i, name := range names {
		var counts [KindBool + 1]int
		for _, rec := range records {
			if i < len(rec) {
				counts[rec[i].Kind]++
			}
		}
		best, bestCount := TypeString, counts[KindString]
		if counts[KindNumber] > bestCount {
			best, bestCount = TypeNumber, counts[KindNumber]
		}
		if counts[KindBool] > bestCount {
			best = TypeBool
		}
		schema[i] = Column{Name: name, Type: best}
	}
	return schema
}
