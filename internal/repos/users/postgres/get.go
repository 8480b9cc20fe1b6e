package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/phamdv/gamestore/internal/repos/users"
)

func (r *usersRepo) Get(ctx context.Context, userID int64) (users.User, error) {
	var u users.User

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, display_name, wallet_balance, is_admin
		FROM users
		WHERE id = $1
	`, userID).Scan(&u.ID, &u.Username, &u.DisplayName, &u.WalletBalance, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrUserNotFound
		}

		return users.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}
