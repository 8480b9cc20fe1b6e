package library

import (
	"database/sql"

	"github.com/phamdv/gamestore/internal/repos/library"
)

var _ library.Libraries = (*libraryRepo)(nil)

type libraryRepo struct{ db *sql.DB }

func New(db *sql.DB) *libraryRepo {
	return &libraryRepo{db: db}
}
