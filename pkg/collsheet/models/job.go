// Package models defines data structures for collection sheet extraction.
package models

// CollectionJob represents an active collection row promoted to a typed record.
type CollectionJob struct {
	// CollectionID is the parsed collection identifier.
	CollectionID int `json:"collection_id" yaml:"collection_id"`
	// Repository is the owning repository code (nil if the cell is empty).
	Repository *string `json:"repository,omitempty" yaml:"repository,omitempty"`
	// CollectionURL is the collection landing page (nil if the cell is empty).
	CollectionURL *string `json:"collection_url,omitempty" yaml:"collection_url,omitempty"`
	// CollectionName is the display name (nil if the cell is empty).
	CollectionName *string `json:"collection_name,omitempty" yaml:"collection_name,omitempty"`
	// RowNumber is the row position in the source grid (1-based).
	RowNumber int `json:"row_number" yaml:"row_number"`
}
