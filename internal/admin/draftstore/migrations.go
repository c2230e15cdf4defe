package draftstore

import (
	_ "embed"
)

// Встроенные SQL-миграции локальной БД черновиков (SQLite).
//
//go:embed migrations/001_init.sql
var initDDL string

func initialDDL() string { return initDDL }
