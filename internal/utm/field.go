package utm

import "strings"

// DualField keeps a free-text input and a preset selector in sync.
// The resolved value is the single source of truth; whether it matches a
// known preset is derived from it.
type DualField struct {
	presets []Preset
	text    string
	preset  string
}

// NewDualField returns an empty field offering the given presets.
func NewDualField(presets []Preset) DualField {
	return DualField{presets: presets}
}

// SelectPreset selects a preset and copies its value into the text input.
// Selecting an empty or unknown value resets the selector to none and keeps the text.
func (f *DualField) SelectPreset(value string) {
	if !hasPreset(f.presets, value) {
		f.preset = ""
		return
	}
	f.preset = value
	f.text = value
}

// SetText records manual input. The preset selection is cleared when the
// text no longer equals the selected preset.
func (f *DualField) SetText(text string) {
	f.text = text
	if text != f.preset {
		f.preset = ""
	}
}

// Load sets the text to value and selects the matching preset, if any.
func (f *DualField) Load(value string) {
	f.text = value
	if hasPreset(f.presets, value) {
		f.preset = value
	} else {
		f.preset = ""
	}
}

// Clear empties both inputs.
func (f *DualField) Clear() {
	f.text = ""
	f.preset = ""
}

func (f *DualField) Text() string   { return f.text }
func (f *DualField) Preset() string { return f.preset }

// Value returns the resolved value.
func (f *DualField) Value() string {
	return ResolveDualField(f.text, f.preset)
}

// MatchesPreset reports whether the resolved value is one of the known presets.
func (f *DualField) MatchesPreset() bool {
	return hasPreset(f.presets, strings.TrimSpace(f.Value()))
}
