// Package auth — файловое хранилище сессии консоли: auth-токен и логин
// последнего вошедшего пользователя в каталоге настроек.
package auth

import (
	"errors"
	"os"
	"path/filepath"
)

// Store описывает хранилище сессии на стороне консоли.
type Store interface {
	SaveSession(login, token string) error
	LoadToken() (string, error)
	LoadLogin() (string, error)
	Clear() error
}

// FSStore хранит токен и логин отдельными файлами в Dir.
type FSStore struct {
	Dir string
}

// NewFSStore создаёт хранилище в указанном каталоге.
func NewFSStore(dir string) *FSStore {
	return &FSStore{Dir: dir}
}

func (s *FSStore) ensureDir() error {
	return os.MkdirAll(s.Dir, 0o700)
}

func (s *FSStore) tokenPath() string { return filepath.Join(s.Dir, "auth_token") }
func (s *FSStore) loginPath() string { return filepath.Join(s.Dir, "last_login") }

// SaveSession записывает токен и логин после успешного входа.
func (s *FSStore) SaveSession(login, token string) error {
	if login == "" {
		return errors.New("empty login")
	}
	if token == "" {
		return errors.New("empty token")
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenPath(), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(s.loginPath(), []byte(login), 0o600)
}

func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty file " + filepath.Base(path))
	}
	return string(b), nil
}

// LoadToken читает сохранённый auth-токен.
func (s *FSStore) LoadToken() (string, error) {
	return readTrimmed(s.tokenPath())
}

// LoadLogin читает логин последнего вошедшего пользователя.
func (s *FSStore) LoadLogin() (string, error) {
	return readTrimmed(s.loginPath())
}

// Clear удаляет сохранённую сессию. Отсутствие файлов не ошибка.
func (s *FSStore) Clear() error {
	if err := os.Remove(s.tokenPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(s.loginPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
