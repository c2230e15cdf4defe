package commands

import (
	"PortfolioDesk/internal/admin/api"
	"PortfolioDesk/internal/admin/auth"
	"PortfolioDesk/internal/config"
)

// sessionStore возвращает файловое хранилище сессии консоли.
func sessionStore(cfg *config.Config) *auth.FSStore {
	return auth.NewFSStore(cfg.ConsoleDBDir)
}

// newClient собирает API-клиент с сохранённым токеном. Отсутствие
// токена не ошибка: чтение таблиц доступно и без входа.
func newClient(cfg *config.Config) *api.Client {
	token, _ := sessionStore(cfg).LoadToken()
	return api.New(cfg.ServerURL, token)
}
