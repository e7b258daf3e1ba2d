package entity

import "time"

// CampaignDate is the month and year merged into the campaign slug.
type CampaignDate struct {
	Month int // Month is zero-based: 0 is January, 11 is December.
	Year  int
}

// LinkParameters holds the raw generator input before resolution.
type LinkParameters struct {
	BaseURL      string
	SourceCustom string
	SourcePreset string
	MediumCustom string
	MediumPreset string
	CampaignName string
	CampaignDate *CampaignDate
	Term         string
	Content      string
}

// HistoryItem represents a previously generated link.
type HistoryItem struct {
	ID        string    // ID is the unique identifier generated at creation.
	URL       string    // URL is the fully built link.
	CreatedAt time.Time // CreatedAt is the timestamp when the link was generated.
}
