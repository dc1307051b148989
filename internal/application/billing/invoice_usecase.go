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

// InvoiceUseCase casos de uso de facturas, incluida la conversión desde una cotización.
type InvoiceUseCase struct {
	repo       repository.InvoiceRepository
	quotations repository.QuotationRepository
	tx         repository.DocumentTxRunner
	recorder   Recorder
	now        func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. recorder puede ser nil.
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	quotations repository.QuotationRepository,
	tx repository.DocumentTxRunner,
	recorder Recorder,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:       repo,
		quotations: quotations,
		tx:         tx,
		recorder:   recorderOrNop(recorder),
		now:        time.Now,
	}
}

func (uc *InvoiceUseCase) List(ctx context.Context) ([]*entity.Invoice, error) {
	return uc.repo.List(ctx)
}

// Get devuelve la cabecera con sus líneas en orden.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.InvoiceDocument, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := &entity.InvoiceDocument{Invoice: *inv, Items: make([]entity.InvoiceItem, 0, len(items))}
	for _, it := range items {
		doc.Items = append(doc.Items, *it)
	}
	return doc, nil
}

func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	inv := uc.invoiceFromRequest(in)
	inv.Total = document.NormalizeAmount(in.Total)
	if err := uc.repo.Create(ctx, inv); err != nil {
		return "", err
	}
	return inv.ID, nil
}

func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	inv := uc.invoiceFromRequest(in)
	inv.ID = id
	inv.Total = document.NormalizeAmount(in.Total)
	return uc.repo.Update(ctx, inv)
}

func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *InvoiceUseCase) ListItems(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	return uc.repo.ListItems(ctx, invoiceID)
}

// CreateItem agrega una línea al final de la factura con su total recalculado.
func (uc *InvoiceUseCase) CreateItem(ctx context.Context, in dto.InvoiceItemRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	line := document.Normalize(in.ToLineItem())
	line.Position = -1
	it := &entity.InvoiceItem{InvoiceID: in.InvoiceID, LineItem: line}
	if err := uc.repo.CreateItem(ctx, it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (uc *InvoiceUseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.repo.DeleteItem(ctx, id)
}

// NextNumber número sugerido para una factura nueva.
func (uc *InvoiceUseCase) NextNumber(ctx context.Context) (string, error) {
	return nextInvoiceNumber(ctx, uc.repo)
}

// CreateDocument crea cabecera y líneas en una sola transacción.
func (uc *InvoiceUseCase) CreateDocument(ctx context.Context, in dto.InvoiceDocumentRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	inv := uc.invoiceFromRequest(in.InvoiceRequest)
	lines := normalizeLines(in.Items)
	inv.Total = document.SumTotals(lines)

	if err := uc.createInTx(ctx, inv, lines); err != nil {
		return "", err
	}
	return inv.ID, nil
}

// SaveDocument actualiza la cabecera y reemplaza todas las líneas en una sola transacción.
func (uc *InvoiceUseCase) SaveDocument(ctx context.Context, id string, in dto.InvoiceDocumentRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	inv := uc.invoiceFromRequest(in.InvoiceRequest)
	inv.ID = id
	lines := normalizeLines(in.Items)
	inv.Total = document.SumTotals(lines)

	err := uc.tx.RunDocuments(ctx, func(_ repository.QuotationRepository, invoices repository.InvoiceRepository) error {
		if err := invoices.Update(ctx, inv); err != nil {
			return err
		}
		if err := invoices.DeleteItemsByInvoice(ctx, id); err != nil {
			return err
		}
		return insertInvoiceItems(ctx, invoices, id, lines)
	})
	if err != nil {
		return err
	}
	uc.recorder.DocumentSaved(DocumentKindInvoice, len(lines))
	return nil
}

// ConvertFromQuotation crea una factura en borrador con el cliente, notas y líneas de la
// cotización, conservando la referencia quotation_id. La cotización no se modifica.
func (uc *InvoiceUseCase) ConvertFromQuotation(ctx context.Context, quotationID string) (string, error) {
	q, err := uc.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return "", err
	}
	if q == nil {
		return "", domain.ErrNotFound
	}
	items, err := uc.quotations.ListItems(ctx, quotationID)
	if err != nil {
		return "", err
	}
	lines := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, document.Normalize(it.LineItem))
	}

	now := uc.now()
	qid := q.ID
	inv := &entity.Invoice{
		CustomerID:  q.CustomerID,
		QuotationID: &qid,
		Date:        entity.NewDate(now),
		Status:      entity.InvoiceStatusDraft,
		Notes:       q.Notes,
		Total:       document.SumTotals(lines),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.createInTx(ctx, inv, lines); err != nil {
		return "", err
	}
	return inv.ID, nil
}

func (uc *InvoiceUseCase) createInTx(ctx context.Context, inv *entity.Invoice, lines []entity.LineItem) error {
	err := uc.tx.RunDocuments(ctx, func(_ repository.QuotationRepository, invoices repository.InvoiceRepository) error {
		if inv.InvoiceNumber == "" {
			n, err := nextInvoiceNumber(ctx, invoices)
			if err != nil {
				return err
			}
			inv.InvoiceNumber = n
		}
		if err := invoices.Create(ctx, inv); err != nil {
			return err
		}
		return insertInvoiceItems(ctx, invoices, inv.ID, lines)
	})
	if err != nil {
		return err
	}
	uc.recorder.DocumentSaved(DocumentKindInvoice, len(lines))
	return nil
}

func (uc *InvoiceUseCase) invoiceFromRequest(in dto.InvoiceRequest) *entity.Invoice {
	now := uc.now()
	status := entity.InvoiceStatus(in.Status)
	if status == "" {
		status = entity.InvoiceStatusDraft
	}
	return &entity.Invoice{
		CustomerID:    in.CustomerID,
		QuotationID:   emptyToNil(in.QuotationID),
		InvoiceNumber: in.InvoiceNumber,
		Date:          dateOrToday(in.Date, now),
		DueDate:       nonZeroDate(in.DueDate),
		Status:        status,
		Notes:         emptyToNil(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func insertInvoiceItems(ctx context.Context, repo repository.InvoiceRepository, invoiceID string, lines []entity.LineItem) error {
	for i, line := range lines {
		line.Position = i
		it := &entity.InvoiceItem{InvoiceID: invoiceID, LineItem: line}
		if err := repo.CreateItem(ctx, it); err != nil {
			return fmt.Errorf("línea %d: %w", i+1, err)
		}
	}
	return nil
}

func nextInvoiceNumber(ctx context.Context, repo repository.InvoiceRepository) (string, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return "", err
	}
	latest := ""
	if len(list) > 0 {
		latest = list[0].InvoiceNumber
	}
	return document.NextNumber(entity.InvoiceNumberPrefix, latest), nil
}
