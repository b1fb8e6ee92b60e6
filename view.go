package main

// ViewState owns the loaded dataset and the current derived view. The
// original is never mutated or reordered after load; every filter and
// sort replaces current with a new record slice, so reset is a plain
// reassignment rather than a recomputation.
type ViewState struct {
	original Dataset
	current  Dataset
	pager    Pager
	filters  []string
}

// NewViewState loads a dataset: current starts identical to original,
// page size 5, page 1.
func NewViewState(ds Dataset) *ViewState {
	return &ViewState{
		original: ds,
		current:  ds,
		pager:    newPager(ds.Len()),
	}
}

func (v *ViewState) Current() Dataset  { return v.current }
func (v *ViewState) Original() Dataset { return v.original }
func (v *ViewState) Pager() *Pager     { return &v.pager }

// Filters returns the filter expressions applied since load or reset.
func (v *ViewState) Filters() []string { return v.filters }

// Filter parses the expression and narrows the current view. Conditions
// within one expression AND together, and repeated calls compose: each
// filter applies to the already-filtered view. The pager is re-clamped to
// the new row count. On error the view and pager are untouched.
func (v *ViewState) Filter(expr string) error {
	conds, err := parseConditions(expr)
	if err != nil {
		return err
	}
	filtered, err := applyFilter(v.current, conds)
	if err != nil {
		return err
	}
	v.current = filtered
	v.filters = append(v.filters, expr)
	v.pager.SetTotal(filtered.Len())
	return nil
}

// Sort stably reorders the current view by one column. The row count is
// unchanged, so the pager keeps its position.
func (v *ViewState) Sort(column string, dir SortDirection) error {
	sorted, err := applySort(v.current, column, dir)
	if err != nil {
		return err
	}
	v.current = sorted
	return nil
}

// Reset restores the view produced by load: original records in original
// order, default page size, page 1.
func (v *ViewState) Reset() {
	v.current = v.original
	v.filters = nil
	v.pager.reset(v.original.Len())
}

// ExportAll returns the full current view.
func (v *ViewState) ExportAll() Dataset { return v.current }

// ExportPage returns the current page slice of the current view.
func (v *ViewState) ExportPage() Dataset {
	start, end := v.pager.Bounds()
	return v.current.Slice(start, end)
}

// Head returns the first n records of the current view, independent of
// the pager.
func (v *ViewState) Head(n int) Dataset {
	if n < 0 {
		n = 0
	}
	if n > v.current.Len() {
		n = v.current.Len()
	}
	return v.current.Slice(0, n)
}
