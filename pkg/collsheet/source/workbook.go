package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook reads the grid of one sheet in a local .xlsx file.
type Workbook struct {
	// Path is the workbook file path.
	Path string
	// Sheet is the sheet name. If empty, the first sheet is read.
	Sheet string
}

// ReadGrid returns the formatted cell text of every row in the sheet.
// Rows are ragged: trailing empty cells are not included.
func (w Workbook) ReadGrid(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	sheetName := w.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook %s has no sheets", ErrSheetNotFound, w.Path)
		}
		sheetName = sheets[0]
	}

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheetName, w.Path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

func (w Workbook) String() string {
	return fmt.Sprintf("workbook %s", w.Path)
}
