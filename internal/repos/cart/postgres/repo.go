package cart

import (
	"database/sql"

	"github.com/phamdv/gamestore/internal/repos/cart"
)

var _ cart.Carts = (*cartRepo)(nil)

type cartRepo struct{ db *sql.DB }

func New(db *sql.DB) *cartRepo {
	return &cartRepo{db: db}
}
