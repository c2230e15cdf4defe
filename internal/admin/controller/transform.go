package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SplitCSV превращает строку "a, b ,c" в ["a","b","c"]: разделитель —
// запятая, элементы обрезаются, пустые выбрасываются. Пустой ввод даёт
// пустой срез, а не nil, чтобы в JSON уходил [], а не null.
func SplitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseIntField разбирает числовое поле формы. Пустая строка — ноль,
// мусор — ошибка с именем поля: молча превращать "abc" в ноль нельзя.
func ParseIntField(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, s)
	}
	return n, nil
}

// PublishStamp возвращает время публикации: текущий момент для
// публикуемой записи, nil для черновика. nil в теле запроса очищает
// поле на сервере.
func PublishStamp(published bool, now func() time.Time) *time.Time {
	if !published {
		return nil
	}
	t := now().UTC()
	return &t
}

// Require проверяет обязательные текстовые поля формы, пробельные
// значения считаются пустыми. Возвращает одну ошибку на первое
// незаполненное поле.
func Require(fields map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
