package gconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flipfit/src/ui/gui/gbase"
)

const DefaultFile = "flipfit.json"

// UI preferences only; game state is never saved
type Config struct {
	Theme         string `json:"theme"`           // light/dark
	Lang          string `json:"language"`        // en/ru
	WindowW       int    `json:"window_w"`        //
	WindowH       int    `json:"window_h"`        //
	BoardW        int    `json:"board_w"`         // board area, >= one tile
	BoardH        int    `json:"board_h"`         //
	DoubleClickMs int    `json:"double_click_ms"` // double-click window
	Debug         bool   `json:"debug"`           // true/false

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:         "light",
		Lang:          "en",
		WindowW:       gbase.WindowW,
		WindowH:       gbase.WindowH,
		BoardW:        gbase.BoardW,
		BoardH:        gbase.BoardH,
		DoubleClickMs: 400,
		Debug:         false,
		path:          DefaultFile,
	}
}

func Default() *Config {
	c := defaultConfig()
	return &c
}

// Load reads path, a missing file yields the defaults
func Load(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config %s: %w", filepath.Base(path), err)
	}
	correctableConfig(&c)
	c.path = path

	return &c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.BoardW < 80 || c.BoardH < 80 {
		c.BoardW = def.BoardW
		c.BoardH = def.BoardH
	}
	// window must hold the board plus header and controls
	minW := c.BoardW + 2*gbase.Margin
	minH := c.BoardH + gbase.HeaderH + gbase.ControlsH + 2*gbase.Margin
	if c.WindowW < minW {
		c.WindowW = minW
	}
	if c.WindowH < minH {
		c.WindowH = minH
	}
	if c.DoubleClickMs <= 0 || c.DoubleClickMs > 2000 {
		c.DoubleClickMs = def.DoubleClickMs
	}
}
