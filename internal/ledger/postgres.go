package ledger

import (
	"context"
	"fmt"
	"time"

	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the atomic-append ledger backend. Each save inserts all
// of an order's rows in one transaction, so concurrent saves cannot drop
// each other the way the file rewrite could without its lock.
type PostgresStore struct {
	pool  *pgxpool.Pool
	mylog *logger.Logger
}

func NewPostgresStore(connStr string, mylog *logger.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, err
	}

	mylog.Info("db_connected", "Connected to PostgreSQL ledger")
	return &PostgresStore{pool: pool, mylog: mylog}, nil
}

// ConnString builds a pgx connection string from the usual parts.
func ConnString(user, password, host, port, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}

// EnsureSchema creates the order_lines table. The serial key preserves
// insertion order for ReadAll.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS order_lines (
            id BIGSERIAL PRIMARY KEY,
            order_id TEXT NOT NULL,
            created_at TEXT NOT NULL,
            product TEXT NOT NULL,
            supplier TEXT NOT NULL,
            price NUMERIC NOT NULL,
            qty INT NOT NULL,
            weight TEXT NOT NULL DEFAULT '',
            line_total NUMERIC NOT NULL,
            discount_pct NUMERIC NOT NULL
        )
    `)
	return err
}

func (s *PostgresStore) Append(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, line := range lines {
		_, err = tx.Exec(ctx, `
            INSERT INTO order_lines (
                order_id,
                created_at,
                product,
                supplier,
                price,
                qty,
                weight,
                line_total,
                discount_pct
            )
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `,
			line.OrderID,
			line.Timestamp,
			line.Product,
			line.Supplier,
			line.Price,
			line.Qty,
			line.Weight,
			line.LineTotal,
			line.DiscountPct,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) ReadAll(ctx context.Context) ([]models.OrderLine, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT order_id, created_at, product, supplier, price::text,
               qty::text, weight, line_total::text, discount_pct::text
        FROM order_lines
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		record := make([]string, len(Header))
		dest := make([]any, len(record))
		for i := range record {
			dest[i] = &record[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		line, err := fromRecord(record)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
