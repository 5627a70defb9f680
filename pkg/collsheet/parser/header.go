package parser

import (
	"strings"

	"github.com/ukaji3/collsheet-go/pkg/collsheet/models"
	"golang.org/x/text/cases"
)

// HeaderAliases maps canonical fields to the header spellings accepted for them.
// Aliases are compared after NormalizeHeaderValue.
var HeaderAliases = map[models.Field][]string{
	models.FieldCollectionID:   {"collection id"},
	models.FieldRepository:     {"repository"},
	models.FieldCollectionURL:  {"collection url"},
	models.FieldCollectionName: {"collection name"},
	models.FieldActiveInactive: {"active/inactive", "active / inactive"},
}

var (
	aliasToField = buildAliasIndex(HeaderAliases)
	slashSpacing = strings.NewReplacer(" / ", "/", " /", "/", "/ ", "/")
)

func buildAliasIndex(aliases map[models.Field][]string) map[string]models.Field {
	index := make(map[string]models.Field)
	for field, spellings := range aliases {
		for _, alias := range spellings {
			index[NormalizeHeaderValue(alias)] = field
		}
	}
	return index
}

// NormalizeHeaderValue trims, collapses whitespace runs, removes spacing around
// slashes and case-folds a header cell.
func NormalizeHeaderValue(value string) string {
	collapsed := strings.Join(strings.Fields(value), " ")
	return cases.Fold().String(slashSpacing.Replace(collapsed))
}

// LocateHeaderRow returns the first row whose cells cover every required field.
// The second return value is false when no row qualifies.
func LocateHeaderRow(rows [][]string) (models.HeaderLocation, bool) {
	for rowIdx, row := range rows {
		columns := make(map[models.Field]int)
		for colIdx, cellValue := range row {
			field, ok := aliasToField[NormalizeHeaderValue(cellValue)]
			if !ok {
				continue
			}
			// first occurrence wins
			if _, seen := columns[field]; !seen {
				columns[field] = colIdx
			}
		}

		if hasRequiredFields(columns) {
			return models.HeaderLocation{RowIndex: rowIdx, Columns: columns}, true
		}
	}

	return models.HeaderLocation{}, false
}

func hasRequiredFields(columns map[models.Field]int) bool {
	for _, field := range models.RequiredFields {
		if _, ok := columns[field]; !ok {
			return false
		}
	}
	return true
}
