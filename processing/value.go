package processing

import (
	"math"
	"strconv"
)

// Kind тип канонического значения ячейки
type Kind int

const (
	KindMissing Kind = iota // пустая/отсутствующая ячейка
	KindText                // текст: исходное или нераспознанное значение
	KindNumber              // распознанное число
)

// Value каноническое значение ячейки таблицы.
// Различает три случая: распознанное число, исходный текст
// (в том числе нераспознанное числовое значение) и пропуск.
type Value struct {
	Kind Kind
	Num  float64
	Text string
}

// MissingValue создает значение-пропуск
func MissingValue() Value {
	return Value{Kind: KindMissing}
}

// TextValue создает текстовое значение
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NumberValue создает числовое значение
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// IsMissing сообщает, является ли значение пропуском
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// IsFiniteNumber сообщает, является ли значение конечным числом
func (v Value) IsFiniteNumber() bool {
	return v.Kind == KindNumber && !math.IsNaN(v.Num) && !math.IsInf(v.Num, 0)
}

// String возвращает строковое представление для записи в ячейку
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}
