package processing

import (
	"fmt"
)

// Run выполняет конвейер нормализации и поиска расхождений над таблицей.
// Шаги выполняются строго по порядку, каждый — предусловие следующего:
// проверка на пустоту, проверка схемы, исправление ID материалов,
// нормализация числовых колонок, табличная проверка целостности,
// фильтрация по расхождению и добавление вычисляемой колонки.
// Пустой результат фильтрации — успех, а не ошибка.
func Run(t *Table) (*Table, error) {
	if len(t.Rows) == 0 {
		return nil, ErrEmptyInput
	}

	if err := ValidateSchema(t, RequiredColumns); err != nil {
		return nil, err
	}

	t.Apply(ColMaterialID, CorrectMaterialID)
	t.Apply(ColRequested, NormalizeNumeric)
	t.Apply(ColReceived, NormalizeNumeric)

	if err := checkNumericIntegrity(t, ColReceived, ColRequested); err != nil {
		return nil, err
	}

	reqIdx := t.ColumnIndex(ColRequested)
	recvIdx := t.ColumnIndex(ColReceived)

	result := t.Filter(func(row []Value) bool {
		return row[reqIdx].Num > row[recvIdx].Num
	})

	result.AppendColumn(ColDiscrepancy, func(row []Value) Value {
		return NumberValue(row[reqIdx].Num - row[recvIdx].Num)
	})

	return result, nil
}

// checkNumericIntegrity проверяет, что после нормализации каждая ячейка
// указанных колонок является конечным числом. Проверка табличная:
// единственная плохая ячейка (нераспознанная или пропуск) прерывает
// весь запуск — искаженный отчет отклоняется целиком.
func checkNumericIntegrity(t *Table, columns ...string) error {
	var bad []string
	for _, col := range columns {
		idx := t.ColumnIndex(col)
		for _, row := range t.Rows {
			if !row[idx].IsFiniteNumber() {
				bad = append(bad, col)
				break
			}
		}
	}
	if len(bad) > 0 {
		return &InvalidNumericDataError{Columns: bad}
	}
	return nil
}

// ProcessFile обрабатывает входной XLSX-файл и сохраняет результат.
// Любая ошибка прерывает запуск целиком, частичный результат не пишется.
func ProcessFile(inputPath, outputPath string) error {
	table, err := ReadTable(inputPath)
	if err != nil {
		return fmt.Errorf("Ошибка обработки файла: %w", err)
	}

	result, err := Run(table)
	if err != nil {
		return fmt.Errorf("Ошибка обработки файла: %w", err)
	}

	if err := WriteTable(result, outputPath); err != nil {
		return fmt.Errorf("Ошибка обработки файла: %w", err)
	}

	return nil
}
