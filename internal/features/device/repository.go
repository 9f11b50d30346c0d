// Package device — repository.go persists devices and profit snapshots.
package device

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

// Repository performs device mutations against PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const deviceColumns = `id, code, price, purchase_date, status, wallet,
	channel, game_amount, profit, resolved_at, chat_id, created_at`

// Create inserts a bought device and returns it with its row id.
func (r *Repository) Create(ctx context.Context, d *Device) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO devices (code, price, purchase_date, status, chat_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, d.Code, d.Price, d.PurchaseDate, StatusBought, d.ChatID,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	d.Status = StatusBought
	return nil
}

// FindLatestByCode resolves a code to its most recently purchased row —
// the documented tie-break for reused codes.
func (r *Repository) FindLatestByCode(ctx context.Context, code string) (*Device, error) {
	var d Device
	err := r.db.QueryRow(ctx, `
		SELECT `+deviceColumns+`
		FROM devices
		WHERE code = $1
		ORDER BY purchase_date DESC, id DESC
		LIMIT 1
	`, code).Scan(
		&d.ID, &d.Code, &d.Price, &d.PurchaseDate, &d.Status, &d.Wallet,
		&d.Channel, &d.GameAmount, &d.Profit, &d.ResolvedAt, &d.ChatID, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find device: %w", err)
	}
	return &d, nil
}

// AssignWallet stores the funding wallet on a device row.
func (r *Repository) AssignWallet(ctx context.Context, id int64, wallet string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE devices SET wallet = $2 WHERE id = $1
	`, id, wallet)
	if err != nil {
		return fmt.Errorf("failed to assign wallet: %w", err)
	}
	return nil
}

// Resolve marks a device ok with its game amount and computed profit,
// and writes the profit snapshot, all in one transaction.
func (r *Repository) Resolve(ctx context.Context, id int64, channel string, gameAmount, profit int64, at time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var code string
	var price int64
	err = tx.QueryRow(ctx, `
		UPDATE devices
		SET status = $2, channel = $3, game_amount = $4, profit = $5, resolved_at = $6
		WHERE id = $1
		RETURNING code, price
	`, id, StatusOK, channel, gameAmount, profit, at).Scan(&code, &price)
	if err != nil {
		return fmt.Errorf("failed to resolve device: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO device_profits (device_id, code, channel, price, game_amount, profit)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, code, channel, price, gameAmount, profit); err != nil {
		return fmt.Errorf("failed to append profit record: %w", err)
	}

	return tx.Commit(ctx)
}
