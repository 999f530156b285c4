package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/atomicstack/panel-control/internal/button"
	"github.com/atomicstack/panel-control/internal/panel"
)

// Presets is the layout of the optional presets file:
//
//	[abs]
//	hotend = 245
//	bed = 100
//
//	[pla]
//	hotend = 220
//	bed = 60
//
//	[buttons]
//	repeat_threshold = 10
//	repeat_interval = 5
//	debounce = 1
type Presets struct {
	ABS     Preset  `toml:"abs"`
	PLA     Preset  `toml:"pla"`
	Buttons Buttons `toml:"buttons"`
}

type Preset struct {
	Hotend float64 `toml:"hotend"`
	Bed    float64 `toml:"bed"`
}

type Buttons struct {
	RepeatThreshold int `toml:"repeat_threshold"`
	RepeatInterval  int `toml:"repeat_interval"`
	Debounce        int `toml:"debounce"`
}

// DefaultPresets returns the stock preheat targets and button timing.
func DefaultPresets() Presets {
	def := panel.DefaultConfig()
	return Presets{
		ABS: Preset{Hotend: def.ABS.Hotend, Bed: def.ABS.Bed},
		PLA: Preset{Hotend: def.PLA.Hotend, Bed: def.PLA.Bed},
		Buttons: Buttons{
			RepeatThreshold: def.Buttons.RepeatThreshold,
			RepeatInterval:  def.Buttons.RepeatInterval,
			Debounce:        def.Buttons.Debounce,
		},
	}
}

// LoadPresets reads path over the defaults. An empty path yields the
// defaults; keys missing from the file keep their default.
func LoadPresets(path string) (Presets, error) {
	presets := DefaultPresets()
	if path == "" {
		return presets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return presets, fmt.Errorf("failed to read presets %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &presets); err != nil {
		return presets, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}
	return presets, presets.validate()
}

func (p Presets) validate() error {
	for name, preset := range map[string]Preset{"abs": p.ABS, "pla": p.PLA} {
		if preset.Hotend < 0 || preset.Bed < 0 {
			return fmt.Errorf("preset %s: temperatures must be >= 0", name)
		}
	}
	if p.Buttons.RepeatThreshold < 1 || p.Buttons.RepeatInterval < 1 || p.Buttons.Debounce < 1 {
		return fmt.Errorf("buttons: timings must be >= 1 sample")
	}
	return nil
}

// Apply copies the presets into a panel configuration.
func (p Presets) Apply(cfg *panel.Config) {
	cfg.ABS = panel.Preset{Hotend: p.ABS.Hotend, Bed: p.ABS.Bed}
	cfg.PLA = panel.Preset{Hotend: p.PLA.Hotend, Bed: p.PLA.Bed}
	cfg.Buttons = button.Config{
		Debounce:        p.Buttons.Debounce,
		RepeatThreshold: p.Buttons.RepeatThreshold,
		RepeatInterval:  p.Buttons.RepeatInterval,
	}
}
