package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterExpr(t *testing.T, ds Dataset, expr string) Dataset {
	t.Helper()
	conds, err := parseConditions(expr)
	require.NoError(t, err)
	out, err := applyFilter(ds, conds)
	require.NoError(t, err)
	return out
}

func column(ds Dataset, name string) []string {
	idx, err := ds.Schema.Resolve(name)
	if err != nil {
		panic(err)
	}
	vals := make([]string, ds.Len())
	for i, rec := range ds.Records {
		vals[i] = rec[idx].String()
	}
	return vals
}

func TestFilterNumericCoercion(t *testing.T) {
	// Both sides coerce: 9 < 10 numerically even though "9" > "10" as
	// strings.
	ds := mustCSV(t, "N\n9\n10\n11\n")

	out := filterExpr(t, ds, "N>9")
	assert.Equal(t, []string{"10", "11"}, column(out, "N"))
}

func TestFilterStringFallback(t *testing.T) {
	// Literal does not coerce, so the comparison falls back to
	// case-sensitive strings: "9" > "1x" lexically.
	ds := mustCSV(t, "N\n9\n10\n")

	out := filterExpr(t, ds, "N>1x")
	assert.Equal(t, []string{"9"}, column(out, "N"))

	// Exact case-sensitive equality on strings.
	ds = mustCSV(t, "City\nOslo\noslo\n")
	out = filterExpr(t, ds, "City==Oslo")
	assert.Equal(t, []string{"Oslo"}, column(out, "City"))
}

func TestFilterQuotedLiteralForcesStrings(t *testing.T) {
	// "9" quoted is a string literal, so "10" < "9" lexically even though
	// both sides would coerce to numbers.
	ds := mustCSV(t, "N\n9\n10\n")

	out := filterExpr(t, ds, `N<"9"`)
	assert.Equal(t, []string{"10"}, column(out, "N"))
}

func TestFilterConjunction(t *testing.T) {
	ds := mustCSV(t, "Name,Age,City\nBob,30,Oslo\nAnn,35,Oslo\nCid,30,Rome\n")

	out := filterExpr(t, ds, "Age==30,City==Oslo")
	assert.Equal(t, []string{"Bob"}, column(out, "Name"))
}

func TestFilterIdentity(t *testing.T) {
	ds := mustCSV(t, "A\n1\n2\n")
	out, err := applyFilter(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, ds.Records, out.Records)
}

func TestFilterPreservesOrder(t *testing.T) {
	ds := mustCSV(t, "N\n5\n1\n4\n2\n3\n")
	out := filterExpr(t, ds, "N>=3")
	assert.Equal(t, []string{"5", "4", "3"}, column(out, "N"))
}

func TestFilterIdempotence(t *testing.T) {
	ds := mustCSV(t, "Age\n30\n25\n40\n25\n50\n30\n")

	once := filterExpr(t, ds, "Age>=30")
	twice := filterExpr(t, once, "Age>=30")
	assert.Equal(t, once.Records, twice.Records)
}

// ~ is case-insensitive containment, not fuzzy matching: "bob" matches
// "Bob Smith" and "bobby" but not "ROBERT".
func TestFilterSubstring(t *testing.T) {
	ds := mustCSV(t, "Name\nBob Smith\nROBERT\nbobby\n")

	out := filterExpr(t, ds, "Name~bob")
	assert.Equal(t, []string{"Bob Smith", "bobby"}, column(out, "Name"))
}

func TestFilterSubstringOnNumbers(t *testing.T) {
	// ~ works on the formatted cell regardless of type.
	ds := mustCSV(t, "Zip\n10234\n20345\n")

	out := filterExpr(t, ds, "Zip~102")
	assert.Equal(t, []string{"10234"}, column(out, "Zip"))
}

func TestFilterNullCells(t *testing.T) {
	ds := mustCSV(t, "Name,Age\nBob,30\nAnn,\"\"\n")

	// Null satisfies only !=.
	assert.Equal(t, []string{"Bob"}, column(filterExpr(t, ds, "Age==30"), "Name"))
	assert.Equal(t, []string{"Ann"}, column(filterExpr(t, ds, "Age!=30"), "Name"))
	assert.Equal(t, []string{"Bob"}, column(filterExpr(t, ds, "Age>=0"), "Name"))

	// ~ never matches a null cell.
	out := filterExpr(t, ds, "Age~3")
	assert.Equal(t, []string{"Bob"}, column(out, "Name"))
}

func TestFilterNullLiteral(t *testing.T) {
	ds := mustCSV(t, "Name,Email\nBob,b@x.io\nAnn,\"\"\n")

	out := filterExpr(t, ds, "Email!=null")
	assert.Equal(t, []string{"Bob", "Ann"}, column(out, "Name"))

	out = filterExpr(t, ds, "Email==null")
	assert.Equal(t, 0, out.Len())
}

func TestFilterUnknownColumn(t *testing.T) {
	ds := mustCSV(t, "A\n1\n")
	conds, err := parseConditions("B==1")
	require.NoError(t, err)
	_, err = applyFilter(ds, conds)
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestFilterBoolColumn(t *testing.T) {
	ds := mustCSV(t, "Name,Active\nBob,true\nAnn,false\n")

	out := filterExpr(t, ds, "Active==true")
	assert.Equal(t, []string{"Bob"}, column(out, "Name"))
}
