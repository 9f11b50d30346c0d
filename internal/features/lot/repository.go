// Package lot — repository.go persists lots and lot_results.
package lot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

// Repository performs lot mutations against PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a lot and returns it with its row id.
func (r *Repository) Create(ctx context.Context, l *Lot) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO lots (code, qty, total_cost, purchase_date, chat_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, l.Code, l.Qty, l.TotalCost, l.PurchaseDate, l.ChatID,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lot: %w", err)
	}
	return nil
}

// Latest returns the most recently purchased lot.
func (r *Repository) Latest(ctx context.Context) (*Lot, error) {
	var l Lot
	err := r.db.QueryRow(ctx, `
		SELECT id, code, qty, total_cost, purchase_date, wallet, chat_id, created_at
		FROM lots
		ORDER BY purchase_date DESC, id DESC
		LIMIT 1
	`).Scan(&l.ID, &l.Code, &l.Qty, &l.TotalCost, &l.PurchaseDate, &l.Wallet, &l.ChatID, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrLotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest lot: %w", err)
	}
	return &l, nil
}

// FindByCode returns the lot with the generated identifier.
func (r *Repository) FindByCode(ctx context.Context, code string) (*Lot, error) {
	var l Lot
	err := r.db.QueryRow(ctx, `
		SELECT id, code, qty, total_cost, purchase_date, wallet, chat_id, created_at
		FROM lots
		WHERE code = $1
	`, code).Scan(&l.ID, &l.Code, &l.Qty, &l.TotalCost, &l.PurchaseDate, &l.Wallet, &l.ChatID, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrLotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find lot: %w", err)
	}
	return &l, nil
}

// AssignWallet stores the funding wallet on a lot row.
func (r *Repository) AssignWallet(ctx context.Context, id int64, wallet string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE lots SET wallet = $2 WHERE id = $1
	`, id, wallet)
	if err != nil {
		return fmt.Errorf("failed to assign wallet: %w", err)
	}
	return nil
}

// AppendResult inserts one independent outcome row.
func (r *Repository) AppendResult(ctx context.Context, res *Result) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO lot_results (lot_id, lot_code, qty, total_cost, ok_count, tach_count, channel, reward, profit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, res.LotID, res.LotCode, res.Qty, res.TotalCost, res.OkCount, res.TachCount,
		res.Channel, res.Reward, res.Profit)
	if err != nil {
		return fmt.Errorf("failed to append lot result: %w", err)
	}
	return nil
}
