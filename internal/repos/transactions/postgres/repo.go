package transactions

import (
	"database/sql"

	"github.com/phamdv/gamestore/internal/repos/transactions"
)

var _ transactions.Ledgers = (*ledgerRepo)(nil)

type ledgerRepo struct{ db *sql.DB }

func New(db *sql.DB) *ledgerRepo {
	return &ledgerRepo{db: db}
}
