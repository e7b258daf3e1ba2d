package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/utmka/internal/entity"
	"github.com/vadimbarashkov/utmka/internal/utm"
)

const statusError = "error"

type campaignDateRequest struct {
	Month *int `json:"month" validate:"required,min=0,max=11"`
	Year  *int `json:"year" validate:"required,min=1,max=9999"`
}

// linkRequest is the generator input.
type linkRequest struct {
	BaseURL      string               `json:"base_url" validate:"required"`
	SourceCustom string               `json:"source_custom"`
	SourcePreset string               `json:"source_preset"`
	MediumCustom string               `json:"medium_custom"`
	MediumPreset string               `json:"medium_preset"`
	CampaignName string               `json:"campaign_name"`
	CampaignDate *campaignDateRequest `json:"campaign_date"`
	Term         string               `json:"term"`
	Content      string               `json:"content"`
}

func (req *linkRequest) toEntity() entity.LinkParameters {
	params := entity.LinkParameters{
		BaseURL:      req.BaseURL,
		SourceCustom: req.SourceCustom,
		SourcePreset: req.SourcePreset,
		MediumCustom: req.MediumCustom,
		MediumPreset: req.MediumPreset,
		CampaignName: req.CampaignName,
		Term:         req.Term,
		Content:      req.Content,
	}
	if d := req.CampaignDate; d != nil && d.Month != nil && d.Year != nil {
		params.CampaignDate = &entity.CampaignDate{Month: *d.Month, Year: *d.Year}
	}
	return params
}

type linkResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func toLinkResponse(item *entity.HistoryItem) linkResponse {
	return linkResponse{
		ID:        item.ID,
		URL:       item.URL,
		CreatedAt: item.CreatedAt,
	}
}

type templateRequest struct {
	Name    string  `json:"name" validate:"required"`
	Source  string  `json:"source"`
	Medium  string  `json:"medium"`
	GroupID *string `json:"group_id"`
}

// templatePatchRequest leaves absent fields unchanged; an empty group_id
// moves the template out of its group.
type templatePatchRequest struct {
	Name    *string `json:"name"`
	Source  *string `json:"source"`
	Medium  *string `json:"medium"`
	GroupID *string `json:"group_id"`
}

func (req *templatePatchRequest) toEntity() entity.TemplatePatch {
	return entity.TemplatePatch{
		Name:    req.Name,
		Source:  req.Source,
		Medium:  req.Medium,
		GroupID: req.GroupID,
	}
}

type templateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Medium    string    `json:"medium"`
	CreatedAt time.Time `json:"created_at"`
	GroupID   *string   `json:"group_id"`
}

func toTemplateResponse(t *entity.Template) templateResponse {
	return templateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Source:    t.Source,
		Medium:    t.Medium,
		CreatedAt: t.CreatedAt,
		GroupID:   t.GroupID,
	}
}

type groupRequest struct {
	Name string `json:"name" validate:"required"`
}

type groupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fieldSnapshotResponse struct {
	Text          string `json:"text"`
	Preset        string `json:"preset"`
	MatchesPreset bool   `json:"matches_preset"`
}

type formResponse struct {
	State      string                `json:"state"`
	TemplateID string                `json:"template_id,omitempty"`
	Source     fieldSnapshotResponse `json:"source"`
	Medium     fieldSnapshotResponse `json:"medium"`
}

func toFormResponse(s utm.FormSnapshot) formResponse {
	return formResponse{
		State:      s.State.String(),
		TemplateID: s.TemplateID,
		Source: fieldSnapshotResponse{
			Text:          s.Source.Text,
			Preset:        s.Source.Preset,
			MatchesPreset: s.Source.MatchesPreset,
		},
		Medium: fieldSnapshotResponse{
			Text:          s.Medium.Text,
			Preset:        s.Medium.Preset,
			MatchesPreset: s.Medium.MatchesPreset,
		},
	}
}

type presetResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type presetsResponse struct {
	Sources []presetResponse `json:"sources"`
	Mediums []presetResponse `json:"mediums"`
}

func toPresetsResponse(c utm.Catalog) presetsResponse {
	convert := func(presets []utm.Preset) []presetResponse {
		out := make([]presetResponse, 0, len(presets))
		for _, p := range presets {
			out = append(out, presetResponse{Label: p.Label, Value: p.Value})
		}
		return out
	}

	return presetsResponse{
		Sources: convert(c.Sources),
		Mediums: convert(c.Mediums),
	}
}

type preferencesRequest struct {
	HistoryViewMode   *string `json:"history_view_mode" validate:"omitempty,oneof=list grid table"`
	HistorySortOrder  *string `json:"history_sort_order" validate:"omitempty,oneof=newest oldest"`
	TemplatesViewMode *string `json:"templates_view_mode" validate:"omitempty,oneof=list grid table"`
}

func (req *preferencesRequest) toEntity() entity.PreferencesPatch {
	var patch entity.PreferencesPatch
	if req.HistoryViewMode != nil {
		m := entity.ViewMode(*req.HistoryViewMode)
		patch.HistoryViewMode = &m
	}
	if req.HistorySortOrder != nil {
		o := entity.SortOrder(*req.HistorySortOrder)
		patch.HistorySortOrder = &o
	}
	if req.TemplatesViewMode != nil {
		m := entity.ViewMode(*req.TemplatesViewMode)
		patch.TemplatesViewMode = &m
	}
	return patch
}

type preferencesResponse struct {
	HistoryViewMode   string `json:"history_view_mode"`
	HistorySortOrder  string `json:"history_sort_order"`
	TemplatesViewMode string `json:"templates_view_mode"`
	LoggedIn          bool   `json:"logged_in"`
}

func toPreferencesResponse(p *entity.Preferences) preferencesResponse {
	return preferencesResponse{
		HistoryViewMode:   string(p.HistoryViewMode),
		HistorySortOrder:  string(p.HistorySortOrder),
		TemplatesViewMode: string(p.TemplatesViewMode),
		LoggedIn:          p.LoggedIn,
	}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	invalidPreferenceResponse = errorResponse{
		Status:  statusError,
		Message: "invalid preference value",
	}

	linkNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "link not found",
	}

	templateNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "template not found",
	}

	groupNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "group not found",
	}

	unauthorizedResponse = errorResponse{
		Status:  statusError,
		Message: "unauthorized",
	}

	rateLimitExceededResponse = errorResponse{
		Status:  statusError,
		Message: "rate limit exceeded",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email"
	case "min", "max":
		return "value out of range"
	case "oneof":
		return "unsupported value"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}

func fieldErrorResponse(field, message string) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  []validationError{{Field: field, Message: message}},
	}
}
