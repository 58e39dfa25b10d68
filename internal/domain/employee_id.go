package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// EmployeeIDPrefix - префикс табельного номера сотрудника
const EmployeeIDPrefix = "EMP"

// FormatEmployeeID форматирует порядковый номер как EMP001; после 999 ширина растёт
func FormatEmployeeID(seq int) string {
	return fmt.Sprintf("%s%03d", EmployeeIDPrefix, seq)
}

// ParseEmployeeID извлекает порядковый номер из идентификатора вида EMP001
func ParseEmployeeID(id string) (int, error) {
	digits, ok := strings.CutPrefix(id, EmployeeIDPrefix)
	if !ok || digits == "" {
		return 0, ErrInvalidEmployeeID
	}
	seq, err := strconv.Atoi(digits)
	if err != nil || seq < 0 {
		return 0, ErrInvalidEmployeeID
	}
	return seq, nil
}

// NextEmployeeID вычисляет следующий идентификатор по наибольшему существующему.
// Пустой last означает, что сотрудников ещё нет.
func NextEmployeeID(last string) (string, error) {
	if last == "" {
		return FormatEmployeeID(1), nil
	}
	seq, err := ParseEmployeeID(last)
	if err != nil {
		return "", fmt.Errorf("parse last employee id %q: %w", last, err)
	}
	return FormatEmployeeID(seq + 1), nil
}
