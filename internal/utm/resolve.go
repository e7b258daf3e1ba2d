package utm

import (
	"fmt"
	"strings"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

// Params holds one resolved value per UTM parameter. Empty values are omitted from the link.
type Params struct {
	Source   string
	Medium   string
	Campaign string
	Term     string
	Content  string
}

// ResolveDualField picks the effective value of a field that can be typed in
// manually or chosen from presets. Manual input wins over the preset.
func ResolveDualField(manual, preset string) string {
	if v := strings.TrimSpace(manual); v != "" {
		return v
	}
	return strings.TrimSpace(preset)
}

// ResolveCampaign merges the campaign name with the optional campaign date.
func ResolveCampaign(name string, date *entity.CampaignDate) string {
	name = strings.TrimSpace(name)

	if date == nil {
		return name
	}

	slug := FormatCampaignSlug(date.Month, date.Year)
	if name == "" {
		return slug
	}

	return name + "_" + slug
}

// Resolve turns the raw generator input into Params. It fails with
// entity.ErrIncompleteSource when no source is given.
func Resolve(p entity.LinkParameters) (Params, error) {
	const op = "utm.Resolve"

	source := ResolveDualField(p.SourceCustom, p.SourcePreset)
	if source == "" {
		return Params{}, fmt.Errorf("%s: %w", op, entity.ErrIncompleteSource)
	}

	return Params{
		Source:   source,
		Medium:   ResolveDualField(p.MediumCustom, p.MediumPreset),
		Campaign: ResolveCampaign(p.CampaignName, p.CampaignDate),
		Term:     strings.TrimSpace(p.Term),
		Content:  strings.TrimSpace(p.Content),
	}, nil
}
