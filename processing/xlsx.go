package processing

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadTable читает первый лист XLSX-файла в таблицу.
// Первая строка листа считается заголовками, остальные — данными.
// Строки короче заголовков дополняются пропусками, порядок сохраняется.
func ReadTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: в файле нет листов", ErrUnsupportedFormat)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	if len(rows) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])

	table := &Table{Headers: headers, Rows: make([][]Value, 0, len(rows)-1)}
	for _, raw := range rows[1:] {
		row := make([]Value, len(headers))
		for i := range headers {
			if i < len(raw) && raw[i] != "" {
				row[i] = TextValue(raw[i])
			} else {
				row[i] = MissingValue()
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// WriteTable сохраняет таблицу в XLSX-файл: строка заголовков и данные,
// без колонки индекса. Числовые значения пишутся как числа.
func WriteTable(t *Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	for i, header := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, row := range t.Rows {
		for colIdx, v := range row {
			if v.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			switch v.Kind {
			case KindNumber:
				err = f.SetCellValue(sheetName, cell, v.Num)
			default:
				err = f.SetCellValue(sheetName, cell, v.Text)
			}
			if err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}
