package controller

import "strings"

// Filter возвращает записи, у которых хотя бы одно из поисковых полей
// содержит запрос. Сравнение без учёта регистра, порядок исходного
// среза сохраняется, кеш не изменяется. Пустой запрос (в том числе из
// одних пробелов) возвращает весь список.
func Filter[E any](items []E, query string, fields func(E) []string) []E {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]E, 0, len(items))
	for _, e := range items {
		for _, f := range fields(e) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
