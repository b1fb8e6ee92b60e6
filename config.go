package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Config is the optional user configuration at ~/.dataview.json.
type Config struct {
	PageSize int         `json:"pageSize,omitempty"`
	Colors   ColorConfig `json:"colors,omitempty"`
}

// ColorConfig overrides the per-type cell colors.
type ColorConfig struct {
	String string `json:"string,omitempty"`
	Number string `json:"number,omitempty"`
	Bool   string `json:"bool,omitempty"`
	Null   string `json:"null,omitempty"`
}

func loadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}

	configPath := filepath.Join(homeDir, ".dataview.json")
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %v", configPath, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", configPath, err)
	}
	return &config, nil
}

func defaultTypeColors() map[DataType]lipgloss.Color {
	return map[DataType]lipgloss.Color{
		TypeString: lipgloss.Color("#87CEEB"), // sky blue
		TypeNumber: lipgloss.Color("#90EE90"), // light green
		TypeBool:   lipgloss.Color("#DDA0DD"), // plum
	}
}

func defaultDimTypeColors() map[DataType]lipgloss.Color {
	return map[DataType]lipgloss.Color{
		TypeString: lipgloss.Color("#4682B4"),
		TypeNumber: lipgloss.Color("#6B8E23"),
		TypeBool:   lipgloss.Color("#9370DB"),
	}
}

const defaultNullColor = lipgloss.Color("#A9A9A9")

// applyConfigColors merges config overrides into the default palettes.
func applyConfigColors(config *Config) (map[DataType]lipgloss.Color, map[DataType]lipgloss.Color, lipgloss.Color) {
	colors := defaultTypeColors()
	dimColors := defaultDimTypeColors()
	nullColor := defaultNullColor

	if config.Colors.String != "" {
		colors[TypeString] = lipgloss.Color(config.Colors.String)
		dimColors[TypeString] = lipgloss.Color(config.Colors.String)
	}
	if config.Colors.Number != "" {
		colors[TypeNumber] = lipgloss.Color(config.Colors.Number)
		dimColors[TypeNumber] = lipgloss.Color(config.Colors.Number)
	}
	if config.Colors.Bool != "" {
		colors[TypeBool] = lipgloss.Color(config.Colors.Bool)
		dimColors[TypeBool] = lipgloss.Color(config.Colors.Bool)
	}
	if config.Colors.Null != "" {
		nullColor = lipgloss.Color(config.Colors.Null)
	}
	return colors, dimColors, nullColor
}
