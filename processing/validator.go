package processing

// Имена колонок отчета о закупках
const (
	ColMaterialID  = "ID Материала"
	ColRequested   = "Кол-во по заявке"
	ColReceived    = "Поступило всего"
	ColDiscrepancy = "Расхождение заявка-приход"
)

// RequiredColumns обязательные колонки входного отчета
var RequiredColumns = []string{ColMaterialID, ColReceived, ColRequested}

// ValidateSchema проверяет наличие всех обязательных колонок.
// Возвращает MissingColumnsError со списком всех отсутствующих имен.
// Проверка чистая, без побочных эффектов.
func ValidateSchema(t *Table, required []string) error {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
