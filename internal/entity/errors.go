// Package entity defines the entities and errors used in the application.
// It includes the link parameters accepted by the generator, the history of
// generated links, saved templates with their groups, and the stored
// user preferences.
package entity

import "errors"

var (
	// ErrIncompleteSource is returned when neither the manual nor the preset source is provided.
	ErrIncompleteSource = errors.New("source is required")
	// ErrInvalidURL is returned when the base URL cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrEmptyName is returned when a template or group is saved with a blank name.
	ErrEmptyName = errors.New("name is required")
	// ErrLinkNotFound is returned when a history item with the specified id cannot be found.
	ErrLinkNotFound = errors.New("link not found")
	// ErrTemplateNotFound is returned when a template with the specified id cannot be found.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrGroupNotFound is returned when a template group with the specified id cannot be found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrInvalidPreference is returned when a preference value is outside of its allowed set.
	ErrInvalidPreference = errors.New("invalid preference value")
	// ErrStorage is returned when the persistence layer fails to read or write.
	ErrStorage = errors.New("storage failure")
)
