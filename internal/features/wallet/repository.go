// Package wallet — repository.go mutates the wallets and wallet_ledger
// tables. Balance update and ledger append always happen in one DB
// transaction, with the account row locked FOR UPDATE so concurrent
// operations on the same wallet serialize.
package wallet

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository performs wallet mutations against PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetBalance returns the current balance, creating the wallet at 0 if it
// does not exist yet.
func (r *Repository) GetBalance(ctx context.Context, name string) (int64, error) {
	if err := r.ensure(ctx, name); err != nil {
		return 0, err
	}
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT balance FROM wallets WHERE name = $1`, name).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

// Adjust applies a signed delta and appends the matching ledger entry.
// Returns the new balance.
func (r *Repository) Adjust(ctx context.Context, name string, delta int64, ref, note string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO wallets (name, balance) VALUES ($1, 0)
		ON CONFLICT (name) DO NOTHING
	`, name); err != nil {
		return 0, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	var current int64
	err = tx.QueryRow(ctx, `
		SELECT balance FROM wallets WHERE name = $1 FOR UPDATE
	`, name).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("failed to lock wallet: %w", err)
	}

	newBalance, kind := planAdjust(current, delta)

	if _, err := tx.Exec(ctx, `
		UPDATE wallets SET balance = $2, updated_at = NOW() WHERE name = $1
	`, name, newBalance); err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO wallet_ledger (wallet, amount, kind, ref, note)
		VALUES ($1, $2, $3, $4, $5)
	`, name, delta, kind, ref, note); err != nil {
		return 0, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// SetBalance overrides the balance to an absolute target. The ledger
// records the delta (target − current) with kind admin_set, so replaying
// the ledger still reproduces the stored balance.
func (r *Repository) SetBalance(ctx context.Context, name string, target int64, note string) (delta int64, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO wallets (name, balance) VALUES ($1, 0)
		ON CONFLICT (name) DO NOTHING
	`, name); err != nil {
		return 0, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	var current int64
	err = tx.QueryRow(ctx, `
		SELECT balance FROM wallets WHERE name = $1 FOR UPDATE
	`, name).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("failed to lock wallet: %w", err)
	}

	delta = planAdminSet(current, target)

	if _, err := tx.Exec(ctx, `
		UPDATE wallets SET balance = $2, updated_at = NOW() WHERE name = $1
	`, name, target); err != nil {
		return 0, fmt.Errorf("failed to set balance: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO wallet_ledger (wallet, amount, kind, ref, note)
		VALUES ($1, $2, $3, '', $4)
	`, name, delta, EntryAdminSet, note); err != nil {
		return 0, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return delta, nil
}

// EnsureAccounts seeds all known wallets at zero. Individual operations
// ensure their own row too, so this is a startup convenience that makes
// the three wallets visible before the first transaction.
func (r *Repository) EnsureAccounts(ctx context.Context) error {
	for _, name := range []string{WalletMomo, WalletBank, WalletTienMat} {
		if err := r.ensure(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ensure(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wallets (name, balance) VALUES ($1, 0)
		ON CONFLICT (name) DO NOTHING
	`, name)
	if err != nil {
		return fmt.Errorf("failed to ensure wallet: %w", err)
	}
	return nil
}
