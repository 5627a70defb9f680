package models

// Field is a canonical column name of the collection sheet.
type Field string

const (
	FieldCollectionID   Field = "collection_id"
	FieldRepository     Field = "repository"
	FieldCollectionURL  Field = "collection_url"
	FieldCollectionName Field = "collection_name"
	FieldActiveInactive Field = "active_inactive"
)

// RequiredFields lists the fields a row must carry to count as the header row.
var RequiredFields = []Field{FieldCollectionID, FieldActiveInactive}

// HeaderLocation represents the header row index and its column map.
type HeaderLocation struct {
	// RowIndex is the 0-based offset of the header row in the grid.
	RowIndex int
	// Columns maps canonical fields to 0-based column indexes.
	// Optional fields missing from the header have no entry.
	Columns map[Field]int
}

// Column returns the column index for a field and whether the header has it.
func (h HeaderLocation) Column(field Field) (int, bool) {
	idx, ok := h.Columns[field]
	return idx, ok
}
