package reports

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteExcel renders a report's rows-of-cells into a single-sheet workbook.
// Any report implementing RowsProvider exports through this one path, so
// column order in the file follows the report's Rows contract exactly.
func WriteExcel(w io.Writer, sheetName string, provider RowsProvider) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	for rowNo, row := range provider.Rows() {
		for colNo, value := range row {
			cellName, err := excelize.CoordinatesToCellName(colNo+1, rowNo+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cellName, value); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
