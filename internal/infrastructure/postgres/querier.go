package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx: los repositorios funcionan
// igual dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ Querier = (*pgxpool.Pool)(nil)
	_ Querier = (pgx.Tx)(nil)
)

// ready verifica que el repositorio recibió un handle de conexión.
func ready(q Querier) (Querier, error) {
	if q == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	if p, ok := q.(*pgxpool.Pool); ok && p == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	return q, nil
}
