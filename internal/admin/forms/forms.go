// Package forms описывает формы консоли по одной на таблицу: черновик,
// правила заполнения из консольного ввода, валидацию и сборку тела
// запроса. Вся общая механика живёт в пакете controller, здесь только
// различия между таблицами.
package forms

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"PortfolioDesk/internal/admin/controller"
)

// Form связывает дескриптор контроллера с консольным вводом-выводом.
type Form[E any, D any] struct {
	Descriptor controller.Descriptor[E, D]
	// Set применяет пару поле=значение из аргументов команды к черновику.
	Set func(d *D, field, value string) error
	// Render печатает одну строку списка для записи.
	Render func(w io.Writer, e E)
}

func parseBool(field, v string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s must be true or false, got %q", field, v)
	}
	return b, nil
}

func unknownField(table, field string) error {
	return fmt.Errorf("unknown field %q for %s", field, table)
}

func joinCSV(items []string) string {
	return strings.Join(items, ", ")
}

// sliceOrEmpty гарантирует [] вместо null в JSON-теле запроса.
func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
