package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const pkg = "postgres/"

type Config struct {
	Addr     string
	Port     int
	User     string
	Password string
	DB       string
	SSLMode  string
}

func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Addr, c.Port, c.User, c.Password, c.DB, sslMode)
}

func New(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	op := pkg + "New"

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return db, nil
}
