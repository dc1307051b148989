//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("crm"),
		tcpostgres.WithUsername("crm"),
		tcpostgres.WithPassword("crm"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, Migrate(dsn))

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgres_CustomerAndDocumentLifecycle(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	now := time.Now().UTC()

	customers := NewCustomerRepository(pool)
	acme := &entity.Customer{Name: "Acme", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, customers.Create(ctx, acme))
	require.NotEmpty(t, acme.ID)

	got, err := customers.GetByID(ctx, acme.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
	assert.Nil(t, got.Email)

	missing, err := customers.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	quotations := NewQuotationRepository(pool)
	q := &entity.Quotation{
		CustomerID:      acme.ID,
		QuotationNumber: "Q-1001",
		Date:            entity.NewDate(now),
		Status:          entity.QuotationStatusDraft,
		Total:           decimal.RequireFromString("250"),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, quotations.Create(ctx, q))

	tx := NewTxRunner(pool)
	err = tx.RunDocuments(ctx, func(qr repository.QuotationRepository, _ repository.InvoiceRepository) error {
		for i, desc := range []string{"Consulting", "Support"} {
			item := &entity.QuotationItem{QuotationID: q.ID, LineItem: entity.LineItem{
				Description: desc,
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(125),
				Total:       decimal.NewFromInt(125),
				Position:    i,
			}}
			if err := qr.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	items, err := quotations.ListItems(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Consulting", items[0].Description)
	assert.True(t, items[1].UnitPrice.Equal(decimal.NewFromInt(125)))

	// rollback: nada de lo hecho dentro del callback queda persistido
	err = tx.RunDocuments(ctx, func(qr repository.QuotationRepository, _ repository.InvoiceRepository) error {
		if err := qr.DeleteItemsByQuotation(ctx, q.ID); err != nil {
			return err
		}
		return domain.ErrInvalidInput
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	items, err = quotations.ListItems(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// un cliente con documentos no se puede borrar
	err = customers.Delete(ctx, acme.ID)
	require.ErrorIs(t, err, domain.ErrDatabase)

	require.NoError(t, quotations.Delete(ctx, q.ID))
	items, err = quotations.ListItems(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, customers.Delete(ctx, acme.ID))
	require.NoError(t, customers.Delete(ctx, acme.ID))

	err = customers.Update(ctx, acme)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, NewHealth(pool).Ping(ctx))
}
