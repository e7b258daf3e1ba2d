package utm

// Preset is a predefined value offered next to free-text input.
type Preset struct {
	Label string
	Value string
}

// Catalog lists the presets available for the source and medium fields.
type Catalog struct {
	Sources []Preset
	Mediums []Preset
}

// DefaultCatalog returns the presets shipped with the generator.
func DefaultCatalog() Catalog {
	return Catalog{
		Sources: []Preset{
			{Label: "Имаг", Value: "alpinabook"},
			{Label: "Яндекс", Value: "yandex"},
			{Label: "Google", Value: "google"},
			{Label: "VK", Value: "vk"},
		},
		Mediums: []Preset{
			{Label: "CPC", Value: "cpc"},
			{Label: "CPM", Value: "cpm"},
			{Label: "Email", Value: "email"},
			{Label: "Social", Value: "social"},
		},
	}
}

func hasPreset(presets []Preset, value string) bool {
	if value == "" {
		return false
	}
	for _, p := range presets {
		if p.Value == value {
			return true
		}
	}
	return false
}
