package processing

import (
	"errors"
	"strings"
)

// Ошибки конвейера. Тексты совпадают с сообщениями, которые видит
// пользователь в статусе задачи, поэтому оставлены на русском.
var (
	// ErrEmptyInput входная таблица не содержит строк данных
	ErrEmptyInput = errors.New("Файл пустой")

	// ErrUnsupportedFormat артефакт не является корректным XLSX-файлом
	ErrUnsupportedFormat = errors.New("Некорректный формат XLSX-файла")
)

// MissingColumnsError отсутствует одна или несколько обязательных колонок.
// Содержит полный список отсутствующих имен, а не только первое.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "Отсутствуют колонки: " + strings.Join(e.Columns, ", ")
}

// InvalidNumericDataError после нормализации в обязательных числовых
// колонках остались нераспознанные значения. Ошибка табличная: одна
// плохая ячейка прерывает весь запуск, строки не отбрасываются.
type InvalidNumericDataError struct {
	Columns []string // колонки, в которых найдены некорректные данные
}

func (e *InvalidNumericDataError) Error() string {
	return "В числовых колонках есть некорректные данные"
}
