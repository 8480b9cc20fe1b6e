// Package commerce is the transaction engine of the storefront: it
// moves money and ownership between a user's wallet, the cart, the
// library and the append-only transaction ledger.
//
// Every mutating operation runs as one database transaction that locks
// the user row first (FOR UPDATE), then any affected game rows in
// ascending id order. Validation failures surface before the first
// write; any later failure rolls the whole unit back.
package commerce

import (
	"database/sql"
	"time"

	"github.com/phamdv/gamestore/internal/config"
	"github.com/phamdv/gamestore/internal/repos/cart"
	pgcart "github.com/phamdv/gamestore/internal/repos/cart/postgres"
	"github.com/phamdv/gamestore/internal/repos/games"
	pggames "github.com/phamdv/gamestore/internal/repos/games/postgres"
	"github.com/phamdv/gamestore/internal/repos/library"
	pglibrary "github.com/phamdv/gamestore/internal/repos/library/postgres"
	"github.com/phamdv/gamestore/internal/repos/transactions"
	pgtransactions "github.com/phamdv/gamestore/internal/repos/transactions/postgres"
	"github.com/phamdv/gamestore/internal/repos/users"
	pgusers "github.com/phamdv/gamestore/internal/repos/users/postgres"
)

type Service struct {
	db      *sql.DB
	cfg     config.CommerceConfig
	users   users.Users
	games   games.Games
	carts   cart.Carts
	library library.Libraries
	ledger  transactions.Ledgers

	now func() time.Time
}

func New(db *sql.DB, cfg config.CommerceConfig) *Service {
	return &Service{
		db:      db,
		cfg:     cfg,
		users:   pgusers.New(db),
		games:   pggames.New(db),
		carts:   pgcart.New(db),
		library: pglibrary.New(db),
		ledger:  pgtransactions.New(db),
		now:     time.Now,
	}
}
