// Package draftstore — локальная БД черновиков консоли (SQLite,
// отдельный файл на пользователя). Черновик переживает неудачный
// Submit и обрыв сети: команда сохраняет его сюда и восстанавливает
// при следующем запуске.
package draftstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store — хранилище черновиков одного пользователя.
type Store struct {
	db    *sql.DB
	login string
}

// Entry — сохранённый черновик без тела, для списков.
type Entry struct {
	Table    string
	TargetID string
	SavedAt  time.Time
}

// OpenForUser открывает (и создаёт при необходимости) файл БД для
// указанного логина в baseDir. Вторым значением возвращается путь к БД.
func OpenForUser(baseDir, login string) (*Store, string, error) {
	if login == "" {
		return nil, "", errors.New("empty login for draft store")
	}
	dir := filepath.Join(baseDir, "users", login)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "drafts.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &Store{db: db, login: login}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// Save сохраняет черновик таблицы. targetID пуст для создания новой
// записи; повторное сохранение перезаписывает предыдущее.
func (s *Store) Save(table, targetID string, draft any) error {
	if table == "" {
		return errors.New("table is required")
	}
	body, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO drafts(table_name, target_id, body, saved_at)
        VALUES(?, ?, ?, ?)
        ON CONFLICT(table_name, target_id) DO UPDATE SET body = excluded.body, saved_at = excluded.saved_at`,
		table, targetID, string(body), time.Now().Unix(),
	)
	return err
}

// Load восстанавливает черновик в into. Второе значение false, если
// черновика нет.
func (s *Store) Load(table, targetID string, into any) (bool, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM drafts WHERE table_name = ? AND target_id = ?`,
		table, targetID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(body), into); err != nil {
		return false, err
	}
	return true, nil
}

// Delete удаляет черновик после успешной отправки.
func (s *Store) Delete(table, targetID string) error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE table_name = ? AND target_id = ?`, table, targetID)
	return err
}

// List возвращает сохранённые черновики, свежие первыми.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT table_name, target_id, saved_at FROM drafts ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.Table, &e.TargetID, &ts); err != nil {
			return nil, err
		}
		e.SavedAt = time.Unix(ts, 0)
		res = append(res, e)
	}
	return res, rows.Err()
}
