package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/expense-tracker/internal/domain/errors"
	"github.com/polkiloo/expense-tracker/internal/domain/model"
	"github.com/polkiloo/expense-tracker/internal/domain/repository"
)

const uniqueViolation = "23505"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var expenseColumns = []string{"id", "user_id", "description", "amount", "category", "created_at", "updated_at"}

type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type expenseRepository struct {
	storage *Storage
}

var _ repository.Factory = (*Storage)(nil)

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Expenses() repository.ExpenseRepository {
	return &expenseRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            username TEXT NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE TABLE IF NOT EXISTS expenses (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            user_id UUID NOT NULL REFERENCES users(id),
            description TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            category TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user ON expenses(user_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("database schema ready")
	}
	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	u := model.User{Username: username, Email: email, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, username, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM users WHERE email=$1`
	return r.getOne(ctx, query, email)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM users WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// --- ExpenseRepository implementation ---

func scanExpense(row pgx.Row) (*model.Expense, error) {
	var e model.Expense
	if err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func ownedBy(userID, id uuid.UUID) sq.Eq {
	return sq.Eq{"id": id, "user_id": userID}
}

func (r *expenseRepository) Create(ctx context.Context, userID uuid.UUID, description string, amount float64, category *string) (*model.Expense, error) {
	query, args, err := psql.Insert("expenses").
		Columns("user_id", "description", "amount", "category").
		Values(userID, description, amount, category).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert expense: %w", err)
	}

	e := model.Expense{UserID: userID, Description: description, Amount: amount, Category: category}
	if err := r.storage.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &e, nil
}

func (r *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	query, args, err := psql.Select(expenseColumns...).
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expenses: %w", err)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	result := make([]model.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *expenseRepository) Get(ctx context.Context, userID, id uuid.UUID) (*model.Expense, error) {
	query, args, err := psql.Select(expenseColumns...).
		From("expenses").
		Where(ownedBy(userID, id)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get expense: %w", err)
	}

	e, err := scanExpense(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (r *expenseRepository) Update(ctx context.Context, userID, id uuid.UUID, changes model.ExpenseChanges) (*model.Expense, error) {
	builder := psql.Update("expenses")
	if changes.Description != nil {
		builder = builder.Set("description", *changes.Description)
	}
	if changes.Amount != nil {
		builder = builder.Set("amount", *changes.Amount)
	}
	switch {
	case changes.Category != nil:
		builder = builder.Set("category", *changes.Category)
	case changes.ClearCategory:
		builder = builder.Set("category", nil)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(ownedBy(userID, id)).
		Suffix("RETURNING id, user_id, description, amount, category, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update expense: %w", err)
	}

	e, err := scanExpense(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return e, nil
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := psql.Delete("expenses").Where(ownedBy(userID, id)).ToSql()
	if err != nil {
		return fmt.Errorf("build delete expense: %w", err)
	}

	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *expenseRepository) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]model.CategorySpend, error) {
	query, args, err := psql.Select("category", "COALESCE(SUM(amount), 0) AS total").
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		GroupBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category totals: %w", err)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	defer rows.Close()

	result := make([]model.CategorySpend, 0)
	for rows.Next() {
		var c model.CategorySpend
		if err := rows.Scan(&c.Category, &c.Total); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
