package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/collsheet-go/pkg/collsheet/models"
)

// ParseCollectionID parses a cell value as a collection id.
// Integers parse directly; decimals parse only when they have no fractional
// part ("456.0" is 456). The second return value is false otherwise.
func ParseCollectionID(s string) (int, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return 0, false
	}

	// Try integer first
	if i, err := strconv.ParseInt(cleaned, 10, 0); err == nil {
		return int(i), true
	}

	// Sheets often render ids as floats
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// GetRowCell returns the trimmed cell at column idx.
// It returns false when idx is past the end of a ragged row or the cell is blank.
func GetRowCell(row []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	value := strings.TrimSpace(row[idx])
	if value == "" {
		return "", false
	}
	return value, true
}

// fieldCell returns the cell under a header field, false if the header lacks it.
func fieldCell(row []string, header models.HeaderLocation, field models.Field) (string, bool) {
	idx, ok := header.Column(field)
	if !ok {
		return "", false
	}
	return GetRowCell(row, idx)
}

func optionalFieldCell(row []string, header models.HeaderLocation, field models.Field) *string {
	value, ok := fieldCell(row, header, field)
	if !ok {
		return nil
	}
	return &value
}
