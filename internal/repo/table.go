package repo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound возвращается при update/delete по несуществующему id.
var ErrNotFound = errors.New("record not found")

// ErrNoFields возвращается, когда в теле update нет ни одной
// редактируемой колонки.
var ErrNoFields = errors.New("no editable fields in payload")

// TableRepository — единый gorm-репозиторий контентной таблицы.
// Порядок выборки и список редактируемых колонок задаются при создании,
// поэтому девять таблиц обслуживаются одной реализацией.
type TableRepository[M any] struct {
	db       *gorm.DB
	order    string
	editable []string
}

// NewTableRepository создаёт репозиторий таблицы модели M.
// order — SQL-выражение сортировки списка (например "created_at DESC"),
// editable — колонки, которые разрешено менять при update.
func NewTableRepository[M any](db *gorm.DB, order string, editable []string) *TableRepository[M] {
	return &TableRepository[M]{db: db, order: order, editable: editable}
}

// List возвращает всю таблицу в заданном порядке.
func (r *TableRepository[M]) List(ctx context.Context) ([]M, error) {
	var out []M
	if err := r.db.WithContext(ctx).Order(r.order).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID возвращает одну запись или ErrNotFound.
func (r *TableRepository[M]) GetByID(ctx context.Context, id string) (*M, error) {
	var m M
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Insert сохраняет новую запись; id и отметки времени назначает модель/БД.
func (r *TableRepository[M]) Insert(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ColumnsIn отбирает редактируемые колонки, упомянутые среди ключей
// JSON-тела запроса. Частичный payload трогает только свои колонки.
func (r *TableRepository[M]) ColumnsIn(keys map[string]json.RawMessage) []string {
	cols := make([]string, 0, len(r.editable))
	for _, c := range r.editable {
		if _, ok := keys[c]; ok {
			cols = append(cols, c)
		}
	}
	return cols
}

// Editable возвращает полный список редактируемых колонок таблицы.
func (r *TableRepository[M]) Editable() []string { return r.editable }

// Update перезаписывает колонки cols записи id значениями из m.
// Select принудительно включает и нулевые значения (false, "", null),
// иначе снятие publish-флага не долетело бы до БД; колонки, которых
// нет в cols, остаются нетронутыми.
func (r *TableRepository[M]) Update(ctx context.Context, id string, m *M, cols []string) error {
	if len(cols) == 0 {
		return ErrNoFields
	}
	tx := r.db.WithContext(ctx).Model(m).Where("id = ?", id).Select(cols).Updates(m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет запись по id.
func (r *TableRepository[M]) Delete(ctx context.Context, id string) error {
	var m M
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count возвращает число записей в таблице (для сводки дашборда).
func (r *TableRepository[M]) Count(ctx context.Context) (int64, error) {
	var m M
	var n int64
	if err := r.db.WithContext(ctx).Model(&m).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
