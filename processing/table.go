package processing

// Table таблица отчета в памяти: упорядоченные заголовки и строки.
// Строки всегда выровнены по длине заголовков.
type Table struct {
	Headers []string
	Rows    [][]Value
}

// ColumnIndex возвращает индекс колонки по имени или -1
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn сообщает, есть ли колонка с указанным именем
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Apply применяет fn к каждому значению указанной колонки
func (t *Table) Apply(column string, fn func(Value) Value) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return
	}
	for _, row := range t.Rows {
		row[idx] = fn(row[idx])
	}
}

// Filter возвращает новую таблицу со строками, для которых keep вернул true.
// Порядок строк сохраняется.
func (t *Table) Filter(keep func(row []Value) bool) *Table {
	headers := make([]string, len(t.Headers))
	copy(headers, t.Headers)

	filtered := &Table{Headers: headers, Rows: make([][]Value, 0, len(t.Rows))}
	for _, row := range t.Rows {
		if keep(row) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}

// AppendColumn добавляет вычисляемую колонку в конец таблицы
func (t *Table) AppendColumn(name string, compute func(row []Value) Value) {
	t.Headers = append(t.Headers, name)
	for i, row := range t.Rows {
		t.Rows[i] = append(row, compute(row))
	}
}
