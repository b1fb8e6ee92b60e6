package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	return newModel(newTestView(t), &Config{}, "people.csv", true)
}

func TestModelDispatch(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.dispatch("filter Age>=30")
	require.Nil(t, cmd)
	got := next.(model)
	assert.Equal(t, "Filtered rows: 8 (Page 1/2)", got.status)
	assert.False(t, got.statusErr)
	assert.Equal(t, 8, got.vs.Current().Len())
}

func TestModelDispatchError(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.dispatch("filter Salary>=1")
	got := next.(model)
	assert.True(t, got.statusErr)
	assert.Contains(t, got.status, "column not found")
	assert.Equal(t, 12, got.vs.Current().Len(), "state untouched on error")
}

func TestModelDispatchQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.dispatch("exit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelHeadViewCleared(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.dispatch("show 3")
	got := next.(model)
	require.NotNil(t, got.head)

	next, _ = got.dispatch("cols")
	got = next.(model)
	assert.Nil(t, got.head, "head view is transient")
}

func TestModelStatusLine(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, "people.csv | Page 1/3 | Rows: 12 | Page size: 5", m.statusLine())

	next, _ := m.dispatch("filter Age>=30")
	got := next.(model)
	assert.Contains(t, got.statusLine(), "[FILTERED: 1 filters]")
}

func TestModelRenderTable(t *testing.T) {
	m := newTestModel(t)

	out := m.renderTable(m.vs.ExportPage())
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Age")
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "f", "only the current page is rendered")

	assert.Equal(t, "No data to display", m.renderTable(Dataset{}))
}
