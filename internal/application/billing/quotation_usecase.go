package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// QuotationUseCase casos de uso de cotizaciones: cabecera, líneas y documento completo.
type QuotationUseCase struct {
	repo     repository.QuotationRepository
	tx       repository.DocumentTxRunner
	recorder Recorder
	now      func() time.Time
}

// NewQuotationUseCase construye el caso de uso. recorder puede ser nil.
func NewQuotationUseCase(repo repository.QuotationRepository, tx repository.DocumentTxRunner, recorder Recorder) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, tx: tx, recorder: recorderOrNop(recorder), now: time.Now}
}

// List lista las cabeceras, las más recientes primero.
func (uc *QuotationUseCase) List(ctx context.Context) ([]*entity.Quotation, error) {
	return uc.repo.List(ctx)
}

// Get devuelve la cabecera con sus líneas en orden.
func (uc *QuotationUseCase) Get(ctx context.Context, id string) (*entity.QuotationDocument, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := &entity.QuotationDocument{Quotation: *q, Items: make([]entity.QuotationItem, 0, len(items))}
	for _, it := range items {
		doc.Items = append(doc.Items, *it)
	}
	return doc, nil
}

// Create da de alta solo la cabecera (el total viaja tal cual).
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.QuotationRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	q := uc.quotationFromRequest(in)
	q.Total = document.NormalizeAmount(in.Total)
	if err := uc.repo.Create(ctx, q); err != nil {
		return "", err
	}
	return q.ID, nil
}

// Update reemplaza la cabecera. ErrNotFound si no existe.
func (uc *QuotationUseCase) Update(ctx context.Context, id string, in dto.QuotationRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	q := uc.quotationFromRequest(in)
	q.ID = id
	q.Total = document.NormalizeAmount(in.Total)
	return uc.repo.Update(ctx, q)
}

// Delete elimina la cotización y sus líneas.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *QuotationUseCase) ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	return uc.repo.ListItems(ctx, quotationID)
}

// CreateItem agrega una línea al final del documento con su total recalculado.
func (uc *QuotationUseCase) CreateItem(ctx context.Context, in dto.QuotationItemRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	line := document.Normalize(in.ToLineItem())
	line.Position = -1
	it := &entity.QuotationItem{QuotationID: in.QuotationID, LineItem: line}
	if err := uc.repo.CreateItem(ctx, it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (uc *QuotationUseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.repo.DeleteItem(ctx, id)
}

// NextNumber número sugerido para una cotización nueva (a partir de la más reciente).
func (uc *QuotationUseCase) NextNumber(ctx context.Context) (string, error) {
	return nextQuotationNumber(ctx, uc.repo)
}

// CreateDocument crea cabecera y líneas en una sola transacción.
// Sin número, se asigna el siguiente de la serie.
func (uc *QuotationUseCase) CreateDocument(ctx context.Context, in dto.QuotationDocumentRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	q := uc.quotationFromRequest(in.QuotationRequest)
	lines := normalizeLines(in.Items)
	q.Total = document.SumTotals(lines)

	err := uc.tx.RunDocuments(ctx, func(quotations repository.QuotationRepository, _ repository.InvoiceRepository) error {
		if q.QuotationNumber == "" {
			n, err := nextQuotationNumber(ctx, quotations)
			if err != nil {
				return err
			}
			q.QuotationNumber = n
		}
		if err := quotations.Create(ctx, q); err != nil {
			return err
		}
		return insertQuotationItems(ctx, quotations, q.ID, lines)
	})
	if err != nil {
		return "", err
	}
	uc.recorder.DocumentSaved(DocumentKindQuotation, len(lines))
	return q.ID, nil
}

// SaveDocument actualiza la cabecera y reemplaza todas las líneas en una sola transacción:
// si algo falla, la cotización queda como estaba.
func (uc *QuotationUseCase) SaveDocument(ctx context.Context, id string, in dto.QuotationDocumentRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	q := uc.quotationFromRequest(in.QuotationRequest)
	q.ID = id
	lines := normalizeLines(in.Items)
	q.Total = document.SumTotals(lines)

	err := uc.tx.RunDocuments(ctx, func(quotations repository.QuotationRepository, _ repository.InvoiceRepository) error {
		if err := quotations.Update(ctx, q); err != nil {
			return err
		}
		if err := quotations.DeleteItemsByQuotation(ctx, id); err != nil {
			return err
		}
		return insertQuotationItems(ctx, quotations, id, lines)
	})
	if err != nil {
		return err
	}
	uc.recorder.DocumentSaved(DocumentKindQuotation, len(lines))
	return nil
}

func (uc *QuotationUseCase) quotationFromRequest(in dto.QuotationRequest) *entity.Quotation {
	now := uc.now()
	status := entity.QuotationStatus(in.Status)
	if status == "" {
		status = entity.QuotationStatusDraft
	}
	return &entity.Quotation{
		CustomerID:      in.CustomerID,
		QuotationNumber: in.QuotationNumber,
		Date:            dateOrToday(in.Date, now),
		ValidUntil:      nonZeroDate(in.ValidUntil),
		Status:          status,
		Notes:           emptyToNil(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func insertQuotationItems(ctx context.Context, repo repository.QuotationRepository, quotationID string, lines []entity.LineItem) error {
	for i, line := range lines {
		line.Position = i
		it := &entity.QuotationItem{QuotationID: quotationID, LineItem: line}
		if err := repo.CreateItem(ctx, it); err != nil {
			return fmt.Errorf("línea %d: %w", i+1, err)
		}
	}
	return nil
}

func nextQuotationNumber(ctx context.Context, repo repository.QuotationRepository) (string, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return "", err
	}
	latest := ""
	if len(list) > 0 {
		latest = list[0].QuotationNumber
	}
	return document.NextNumber(entity.QuotationNumberPrefix, latest), nil
}

// normalizeLines redondea cantidades y precios y recalcula cada total.
func normalizeLines(items []dto.LineItemRequest) []entity.LineItem {
	lines := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, document.Normalize(it.ToLineItem()))
	}
	return lines
}

func dateOrToday(d *entity.Date, now time.Time) entity.Date {
	if d == nil || d.IsZero() {
		return entity.NewDate(now)
	}
	return *d
}

func nonZeroDate(d *entity.Date) *entity.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}
