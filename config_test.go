package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApplyConfigColorsDefaults(t *testing.T) {
	colors, dim, null := applyConfigColors(&Config{})

	assert.Equal(t, lipgloss.Color("#87CEEB"), colors[TypeString])
	assert.Equal(t, lipgloss.Color("#4682B4"), dim[TypeString])
	assert.Equal(t, lipgloss.Color("#A9A9A9"), null)
}

func TestApplyConfigColorsOverrides(t *testing.T) {
	cfg := &Config{Colors: ColorConfig{Number: "#FF0000", Null: "#00FF00"}}
	colors, dim, null := applyConfigColors(cfg)

	assert.Equal(t, lipgloss.Color("#FF0000"), colors[TypeNumber])
	assert.Equal(t, lipgloss.Color("#FF0000"), dim[TypeNumber])
	assert.Equal(t, lipgloss.Color("#00FF00"), null)
	assert.Equal(t, lipgloss.Color("#87CEEB"), colors[TypeString], "untouched defaults remain")
}
