package repository

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var _ RowReader = (*XLSXRowReader)(nil)

// XLSXRowReader reads catalog rows from one sheet of a local workbook.
type XLSXRowReader struct {
	path  string
	sheet string
}

func NewXLSXRowReader(path, sheet string) *XLSXRowReader {
	return &XLSXRowReader{path: path, sheet: sheet}
}

func (r *XLSXRowReader) ReadRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", r.path, err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}
