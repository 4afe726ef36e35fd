package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/safedep/coeur/core/audit"
	"github.com/safedep/coeur/orders"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite store at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	// Ensure parent directory exists
	if err := os.MkdirAll(getDir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with modernc.org/sqlite driver
	// Use _pragma=foreign_keys(1) for modernc.org/sqlite
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: path,
	}, nil
}

// Init initializes the database schema.
func (s *SQLiteStore) Init(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			shipping_date TIMESTAMP NOT NULL,
			items TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`,
		`CREATE TABLE IF NOT EXISTS invocations (
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMP NOT NULL,
			action TEXT NOT NULL,
			caller TEXT NOT NULL,
			outcome TEXT NOT NULL,
			detail TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invocations_timestamp ON invocations (timestamp)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveOrder persists a new order.
func (s *SQLiteStore) SaveOrder(ctx context.Context, order *orders.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (id, shipping_date, items, created_at) VALUES (?, ?, ?, ?)`,
		order.ID.String(), order.ShippingDate.UTC(), string(items), order.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// ListOrders retrieves all orders, newest first.
func (s *SQLiteStore) ListOrders(ctx context.Context) ([]*orders.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, shipping_date, items, created_at FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []*orders.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return result, nil
}

// SaveRecord persists an invocation audit record.
func (s *SQLiteStore) SaveRecord(ctx context.Context, rec *audit.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, timestamp, action, caller, outcome, detail) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Timestamp.UTC(), rec.Action, rec.Caller, string(rec.Outcome), rec.Detail)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// ListRecords retrieves invocation records, newest first. A limit of zero
// returns all records.
func (s *SQLiteStore) ListRecords(ctx context.Context, limit int) ([]*audit.Record, error) {
	query := `SELECT id, timestamp, action, caller, outcome, detail FROM invocations ORDER BY timestamp DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var result []*audit.Record
	for rows.Next() {
		var (
			rec    audit.Record
			id     string
			detail sql.NullString
		)
		if err := rows.Scan(&id, &rec.Timestamp, &rec.Action, &rec.Caller, &rec.Outcome, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse record id: %w", err)
		}
		rec.Detail = detail.String
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return result, nil
}

// GetDatabaseInfo returns information about the database.
func (s *SQLiteStore) GetDatabaseInfo(ctx context.Context) (*DatabaseInfo, error) {
	info := &DatabaseInfo{
		Path: s.path,
	}

	// Get file size
	if stat, err := os.Stat(s.path); err == nil {
		info.SizeBytes = stat.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&info.OrderCount); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invocations`).Scan(&info.InvocationCount); err != nil {
		return nil, fmt.Errorf("failed to count invocations: %w", err)
	}

	var oldest, newest sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT MIN(timestamp), MAX(timestamp) FROM invocations`).Scan(&oldest, &newest)
	if err != nil {
		return nil, fmt.Errorf("failed to query record bounds: %w", err)
	}
	if oldest.Valid {
		info.OldestRecord = oldest.Time
	}
	if newest.Valid {
		info.NewestRecord = newest.Time
	}

	return info, nil
}

func scanOrder(rows *sql.Rows) (*orders.Order, error) {
	var (
		order orders.Order
		id    string
		items string
	)
	if err := rows.Scan(&id, &order.ShippingDate, &items, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order id: %w", err)
	}
	order.ID = parsed

	if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	return &order, nil
}

// getDir returns the directory portion of a path.
func getDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[:i]
		}
	}
	return "."
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
