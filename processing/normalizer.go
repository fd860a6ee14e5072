package processing

import (
	"strconv"
	"strings"
)

// unitTokens единицы измерения, вырезаемые из числовых значений.
// Набор фиксирован по данным реальных отчетов: кириллические написания
// и их латинские эквиваленты, с учетом регистра. Вырезание подстрочное,
// без учета границ слов.
var unitTokens = []string{
	"М3", "КГ", "Т", "шт", "кг", "т", "м3",
	"M3", "KG", "T", "pcs", "kg", "t", "m3",
}

// NormalizeNumeric приводит значение ячейки к числу: заменяет запятую
// на точку, вырезает единицы измерения и парсит как float.
// Пропуск возвращается как есть. Если после очистки значение не парсится
// (или не является конечным числом), возвращается исходное значение —
// проверка целостности отловит его на уровне всей таблицы.
func NormalizeNumeric(v Value) Value {
	if v.Kind == KindMissing || v.Kind == KindNumber {
		return v
	}

	s := strings.ReplaceAll(v.Text, ",", ".")
	for _, unit := range unitTokens {
		s = strings.TrimSpace(strings.ReplaceAll(s, unit, ""))
	}

	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}

	result := NumberValue(num)
	if !result.IsFiniteNumber() {
		return v
	}
	return result
}

// CorrectMaterialID исправляет артефакт транскрипции в идентификаторах
// материалов: заглавная латинская "I" вместо цифры "1" (исторически из
// OCR и ручного ввода). Заменяются все вхождения.
func CorrectMaterialID(v Value) Value {
	if v.Kind != KindText {
		return v
	}
	return TextValue(strings.ReplaceAll(v.Text, "I", "1"))
}
