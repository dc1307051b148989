package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// dbError envuelve cualquier fallo del driver como domain.ErrDatabase, conservando el
// mensaje original (y el SQLSTATE si es un error de PostgreSQL).
func dbError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s: %s (SQLSTATE %s)", domain.ErrDatabase, op, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrDatabase, op, err)
}
