package transactions

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/phamdv/gamestore/internal/infra/pgtestutil"
	"github.com/phamdv/gamestore/internal/repos/transactions"
)

func seedLedger(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO users (id, username, wallet_balance) VALUES (1, 'u1', 0)`)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	_, err = db.Exec(`INSERT INTO games (id, name, category, price) VALUES (7, 'Tidebreaker', 'Strategy', 45000)`)
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
}

func appendRec(t *testing.T, db *sql.DB, rec transactions.Record) {
	t.Helper()

	tx, err := db.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	repo := New(db)
	if err := repo.Append(tx, rec); err != nil {
		_ = tx.Rollback()
		t.Fatalf("append: %v", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestLedger_AppendAndHistory(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()
	seedLedger(t, db)

	gameID := int64(7)
	batchID := uuid.New()

	appendRec(t, db, transactions.Record{
		UserID: 1, Type: transactions.TypeDeposit, Amount: 100000,
		Description: "Deposit",
	})
	appendRec(t, db, transactions.Record{
		UserID: 1, Type: transactions.TypePurchase, Amount: 45000,
		GameID: &gameID, BatchID: &batchID, Description: "Purchase: Tidebreaker",
	})
	appendRec(t, db, transactions.Record{
		UserID: 1, Type: transactions.TypeRefund, Amount: 45000,
		GameID: &gameID, Description: "Refund: Tidebreaker",
	})

	rows, err := New(db).History(t.Context(), 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}

	// Newest first.
	wantTypes := []transactions.Type{transactions.TypeRefund, transactions.TypePurchase, transactions.TypeDeposit}
	for i, want := range wantTypes {
		if rows[i].Type != want {
			t.Fatalf("row %d: want type %s, got %s", i, want, rows[i].Type)
		}
	}

	purchase := rows[1]
	if purchase.GameID == nil || *purchase.GameID != gameID {
		t.Fatalf("purchase game_id: %v", purchase.GameID)
	}
	if purchase.GameName == nil || *purchase.GameName != "Tidebreaker" {
		t.Fatalf("purchase game name: %v", purchase.GameName)
	}
	if purchase.BatchID == nil || *purchase.BatchID != batchID {
		t.Fatalf("purchase batch_id: %v", purchase.BatchID)
	}

	deposit := rows[2]
	if deposit.GameID != nil || deposit.GameName != nil || deposit.BatchID != nil {
		t.Fatalf("deposit row carries game/batch data: %+v", deposit)
	}
}

func TestLedger_NetBalance(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()
	seedLedger(t, db)

	repo := New(db)

	net, err := repo.NetBalance(t.Context(), 1)
	if err != nil {
		t.Fatalf("net balance: %v", err)
	}
	if net != 0 {
		t.Fatalf("empty ledger net: want 0, got %d", net)
	}

	gameID := int64(7)
	appendRec(t, db, transactions.Record{UserID: 1, Type: transactions.TypeDeposit, Amount: 200000})
	appendRec(t, db, transactions.Record{UserID: 1, Type: transactions.TypePurchase, Amount: 45000, GameID: &gameID})
	appendRec(t, db, transactions.Record{UserID: 1, Type: transactions.TypeRefund, Amount: 45000, GameID: &gameID})
	appendRec(t, db, transactions.Record{UserID: 1, Type: transactions.TypePurchase, Amount: 45000, GameID: &gameID})

	net, err = repo.NetBalance(t.Context(), 1)
	if err != nil {
		t.Fatalf("net balance: %v", err)
	}
	if want := int64(200000 - 45000 + 45000 - 45000); net != want {
		t.Fatalf("net: want %d, got %d", want, net)
	}
}
