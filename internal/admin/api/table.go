package api

import (
	"context"
	"net/http"
)

// TableClient — удалённая таблица контента. Реализует Gateway
// контроллера формы для любой сущности.
type TableClient[E any] struct {
	c     *Client
	table string
}

// NewTableClient создаёт клиент таблицы по её имени в пути /api/{table}.
func NewTableClient[E any](c *Client, table string) *TableClient[E] {
	return &TableClient[E]{c: c, table: table}
}

// List возвращает все записи таблицы в серверном порядке.
func (t *TableClient[E]) List(ctx context.Context) ([]E, error) {
	var out []E
	if err := t.c.do(ctx, http.MethodGet, "/api/"+t.table, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert создаёт запись.
func (t *TableClient[E]) Insert(ctx context.Context, payload map[string]any) error {
	return t.c.do(ctx, http.MethodPost, "/api/"+t.table, payload, nil)
}

// Update изменяет запись по id.
func (t *TableClient[E]) Update(ctx context.Context, id string, payload map[string]any) error {
	return t.c.do(ctx, http.MethodPut, "/api/"+t.table+"/"+id, payload, nil)
}

// Delete удаляет запись по id.
func (t *TableClient[E]) Delete(ctx context.Context, id string) error {
	return t.c.do(ctx, http.MethodDelete, "/api/"+t.table+"/"+id, nil, nil)
}
