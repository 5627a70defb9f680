package parser

import (
	"github.com/ukaji3/collsheet-go/pkg/collsheet/models"
	"go.uber.org/zap"
)

// ActiveStatus is the only active/inactive value that marks a row as a job.
const ActiveStatus = "Active"

// ParseCollectionJobs extracts active collection jobs from the rows below the header.
// A nil filter keeps every id; a non-nil filter keeps only its members.
// It returns nil when no header row can be located.
func ParseCollectionJobs(rows [][]string, filter IDSet, r Reporter) []models.CollectionJob {
	r = reporterOrNop(r)

	header, ok := LocateHeaderRow(rows)
	if !ok {
		r.Error("unable to locate collection sheet header row", zap.Int("rows", len(rows)))
		return nil
	}

	var result []models.CollectionJob
	for rowIdx := header.RowIndex + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // 1-based row number

		idCell, _ := fieldCell(row, header, models.FieldCollectionID)
		collectionID, ok := ParseCollectionID(idCell)
		if !ok {
			continue
		}

		if filter != nil && !filter.Contains(collectionID) {
			continue
		}

		status, _ := fieldCell(row, header, models.FieldActiveInactive)
		if status != ActiveStatus {
			if status != "" {
				r.Warn("skipping collection row with unexpected active flag",
					zap.Int("row", rowNum),
					zap.String("active_flag", status))
			}
			continue
		}

		result = append(result, models.CollectionJob{
			CollectionID:   collectionID,
			Repository:     optionalFieldCell(row, header, models.FieldRepository),
			CollectionURL:  optionalFieldCell(row, header, models.FieldCollectionURL),
			CollectionName: optionalFieldCell(row, header, models.FieldCollectionName),
			RowNumber:      rowNum,
		})
	}

	return result
}
