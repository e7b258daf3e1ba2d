package utm

import "github.com/vadimbarashkov/utmka/internal/entity"

// FormState tracks how the generator form relates to a loaded template.
type FormState int

const (
	FormEmpty FormState = iota
	FormLoaded
	FormEdited
)

func (s FormState) String() string {
	switch s {
	case FormLoaded:
		return "loaded"
	case FormEdited:
		return "edited"
	default:
		return "empty"
	}
}

// Form holds the source and medium fields of the generator together with
// the template they were loaded from.
type Form struct {
	state      FormState
	templateID string
	source     DualField
	medium     DualField
}

// NewForm returns an empty form using the presets of c.
func NewForm(c Catalog) *Form {
	return &Form{
		source: NewDualField(c.Sources),
		medium: NewDualField(c.Mediums),
	}
}

// LoadTemplate applies the values of t. Loading the same template again
// reapplies its values.
func (f *Form) LoadTemplate(t *entity.Template) {
	f.source.Load(t.Source)
	f.medium.Load(t.Medium)
	f.templateID = t.ID
	f.state = FormLoaded
}

// Clear empties the form and forgets the loaded template.
func (f *Form) Clear() {
	f.source.Clear()
	f.medium.Clear()
	f.templateID = ""
	f.state = FormEmpty
}

func (f *Form) SetSourceText(v string)      { f.source.SetText(v); f.touch() }
func (f *Form) SelectSourcePreset(v string) { f.source.SelectPreset(v); f.touch() }
func (f *Form) SetMediumText(v string)      { f.medium.SetText(v); f.touch() }
func (f *Form) SelectMediumPreset(v string) { f.medium.SelectPreset(v); f.touch() }

func (f *Form) touch() {
	if f.state == FormLoaded {
		f.state = FormEdited
	}
}

func (f *Form) State() FormState   { return f.state }
func (f *Form) TemplateID() string { return f.templateID }

// FieldSnapshot is the displayed state of a DualField.
type FieldSnapshot struct {
	Text          string
	Preset        string
	MatchesPreset bool
}

// FormSnapshot is a read-only copy of a Form.
type FormSnapshot struct {
	State      FormState
	TemplateID string
	Source     FieldSnapshot
	Medium     FieldSnapshot
}

// Snapshot returns the current state of the form.
func (f *Form) Snapshot() FormSnapshot {
	return FormSnapshot{
		State:      f.state,
		TemplateID: f.templateID,
		Source:     snapshotField(&f.source),
		Medium:     snapshotField(&f.medium),
	}
}

func snapshotField(d *DualField) FieldSnapshot {
	return FieldSnapshot{
		Text:          d.Text(),
		Preset:        d.Preset(),
		MatchesPreset: d.MatchesPreset(),
	}
}

// Parameters copies the source and medium inputs into p.
func (f *Form) Parameters(p *entity.LinkParameters) {
	p.SourceCustom, p.SourcePreset = f.source.Text(), f.source.Preset()
	p.MediumCustom, p.MediumPreset = f.medium.Text(), f.medium.Preset()
}
