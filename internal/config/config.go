package config

import "time"

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" default:"25"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" default:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" default:"30m"`
}

// CommerceConfig carries the policy knobs of the transaction engine.
// WalletMaxBalance of 0 means no cap on deposits.
type CommerceConfig struct {
	RefundWindow     time.Duration `env:"REFUND_WINDOW" default:"48h"`
	WalletMaxBalance int64         `env:"WALLET_MAX_BALANCE" default:"0"`
}
