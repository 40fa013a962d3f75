package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes tabular data to a single-sheet XLSX workbook.
type ExcelExporter struct {
	file  *excelize.File
	sheet string
}

// NewExcelExporter creates an exporter with one named sheet.
func NewExcelExporter(sheetName string) *ExcelExporter {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheetName)
	return &ExcelExporter{file: file, sheet: sheetName}
}

// WriteHeader writes a bold, frozen header row.
func (e *ExcelExporter) WriteHeader(columns []string) error {
	styleID, err := e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		e.file.SetCellValue(e.sheet, cell, col)
		e.file.SetCellStyle(e.sheet, cell, cell, styleID)
	}

	e.file.SetPanes(e.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	return nil
}

// WriteRows writes data rows under the header, one map per row keyed by
// column name.
func (e *ExcelExporter) WriteRows(rows []map[string]interface{}, columns []string) error {
	for rowIdx, row := range rows {
		for colIdx, colName := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := e.setCellValue(cell, row[colName]); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	if len(rows) > 0 {
		lastCol, _ := excelize.CoordinatesToCellName(len(columns), 1)
		e.file.AutoFilter(e.sheet, "A1:"+lastCol, nil)
	}
	return nil
}

// WriteTo writes the workbook to a writer.
func (e *ExcelExporter) WriteTo(w io.Writer) error {
	return e.file.Write(w)
}

// Close closes the workbook.
func (e *ExcelExporter) Close() error {
	return e.file.Close()
}

func (e *ExcelExporter) setCellValue(cell string, val interface{}) error {
	if val == nil {
		return e.file.SetCellValue(e.sheet, cell, "")
	}

	switch v := val.(type) {
	case time.Time:
		if v.IsZero() {
			return e.file.SetCellValue(e.sheet, cell, "")
		}
		if err := e.file.SetCellValue(e.sheet, cell, v); err != nil {
			return err
		}
		styleID, _ := e.file.NewStyle(&excelize.Style{NumFmt: 22}) // m/d/yy h:mm
		return e.file.SetCellStyle(e.sheet, cell, cell, styleID)
	case *string:
		if v == nil {
			return e.file.SetCellValue(e.sheet, cell, "")
		}
		return e.file.SetCellValue(e.sheet, cell, *v)
	default:
		return e.file.SetCellValue(e.sheet, cell, v)
	}
}
