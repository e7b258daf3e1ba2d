package entity

import "time"

// Template is a named set of preset values that can be loaded into the generator.
type Template struct {
	ID        string
	Name      string
	Source    string
	Medium    string
	CreatedAt time.Time
	GroupID   *string // GroupID is nil for ungrouped templates.
}

// InGroup reports whether the template belongs to the group with the given id.
func (t *Template) InGroup(groupID string) bool {
	return t.GroupID != nil && *t.GroupID == groupID
}

// TemplatePatch describes a partial template update. Nil fields are left unchanged;
// a GroupID pointing to an empty string moves the template out of its group.
type TemplatePatch struct {
	Name    *string
	Source  *string
	Medium  *string
	GroupID *string
}

// TemplateGroup is a folder that templates can be grouped into.
type TemplateGroup struct {
	ID   string
	Name string
}
