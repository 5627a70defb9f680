package parser

import (
	"errors"
	"strings"
)

var (
	// ErrMissingIDs indicates no collection ids were supplied at all.
	ErrMissingIDs = errors.New("no collection IDs provided")
	// ErrEmptyIDs indicates the supplied ids were blank.
	ErrEmptyIDs = errors.New("collection IDs cannot be empty")
	// ErrEmptyIDValue indicates a comma-separated list with an empty entry.
	ErrEmptyIDValue = errors.New("collection IDs cannot include empty values")
	// ErrMixedSeparators indicates commas and spaces were both used as separators.
	ErrMixedSeparators = errors.New("collection IDs cannot mix commas and spaces as separators")
)

// ValidateCollectionIDs splits an operator-supplied id string.
//
// Input containing a comma is split on commas only; every piece must be
// non-empty and free of spaces. Input without a comma is returned whole as a
// single id, spaces included.
func ValidateCollectionIDs(input string) ([]string, error) {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return nil, ErrEmptyIDs
	}

	if !strings.Contains(cleaned, ",") {
		return []string{cleaned}, nil
	}

	parts := strings.Split(cleaned, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	for _, part := range parts {
		if part == "" {
			return nil, ErrEmptyIDValue
		}
	}
	for _, part := range parts {
		if strings.Contains(part, " ") {
			return nil, ErrMixedSeparators
		}
	}

	return parts, nil
}

// ValidateCollectionIDList validates ids given as separate arguments, each of
// which may itself be a comma-separated list. Blank arguments are dropped and
// the results are flattened in order.
func ValidateCollectionIDList(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ErrMissingIDs
	}

	var result []string
	for _, input := range inputs {
		if strings.TrimSpace(input) == "" {
			continue
		}
		ids, err := ValidateCollectionIDs(input)
		if err != nil {
			return nil, err
		}
		result = append(result, ids...)
	}

	if len(result) == 0 {
		return nil, ErrEmptyIDs
	}
	return result, nil
}
