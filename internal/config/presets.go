package config

import (
	"sort"

	"github.com/san-kum/graphcalc/internal/viewport"
)

// Presets are named starting viewports.
var Presets = map[string]viewport.Viewport{
	"default": viewport.Default(),
	"log":     {XMin: 0, XMax: 10, YMin: -5, YMax: 5},
	"unit":    {XMin: -1, XMax: 1, YMin: -1, YMax: 1},
	"wide":    {XMin: -100, XMax: 100, YMin: -100, YMax: 100},
	"trig":    {XMin: -7, XMax: 7, YMin: -2, YMax: 2},
}

func GetPreset(name string) (viewport.Viewport, bool) {
	v, ok := Presets[name]
	return v, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the configured viewport with the named preset.
func (c *Config) ApplyPreset(name string) bool {
	v, ok := GetPreset(name)
	if ok {
		c.Viewport = FromViewport(v)
	}
	return ok
}
