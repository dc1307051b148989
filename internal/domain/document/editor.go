package document

import (
	"errors"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ErrLineOutOfRange posición de línea inexistente.
var ErrLineOutOfRange = errors.New("línea fuera de rango")

// Editor estado editable de las líneas de una cotización o factura.
// El total del documento nunca se guarda: se calcula con Total() cuando se necesita.
type Editor struct {
	lines []entity.LineItem
}

// NewEditor crea un editor con una línea en blanco.
func NewEditor() *Editor {
	return &Editor{lines: []entity.LineItem{BlankLine()}}
}

// NewEditorFrom crea un editor con líneas existentes (ej. al cargar un documento).
// Sin líneas, arranca con una en blanco.
func NewEditorFrom(lines []entity.LineItem) *Editor {
	if len(lines) == 0 {
		return NewEditor()
	}
	cp := make([]entity.LineItem, len(lines))
	copy(cp, lines)
	return &Editor{lines: cp}
}

// BlankLine línea nueva: sin servicio, descripción vacía, cantidad 1, precio 0.
func BlankLine() entity.LineItem {
	return entity.LineItem{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Lines copia de las líneas actuales, con Position asignada según el orden.
func (e *Editor) Lines() []entity.LineItem {
	out := make([]entity.LineItem, len(e.lines))
	for i, l := range e.lines {
		l.Position = i
		out[i] = l
	}
	return out
}

// Len cantidad de líneas.
func (e *Editor) Len() int { return len(e.lines) }

// Line devuelve la línea i.
func (e *Editor) Line(i int) (entity.LineItem, error) {
	if i < 0 || i >= len(e.lines) {
		return entity.LineItem{}, ErrLineOutOfRange
	}
	return e.lines[i], nil
}

// AddLine agrega una línea en blanco al final.
func (e *Editor) AddLine() {
	e.lines = append(e.lines, BlankLine())
}

// RemoveLine elimina la línea i. Siempre queda al menos una línea: con una sola
// línea la operación no hace nada y devuelve false.
func (e *Editor) RemoveLine(i int) bool {
	if len(e.lines) <= 1 || i < 0 || i >= len(e.lines) {
		return false
	}
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
	return true
}

// SelectService precarga la línea i con el servicio: descripción = nombre,
// precio = precio del servicio, total = precio × cantidad actual.
func (e *Editor) SelectService(i int, svc *entity.Service) error {
	if i < 0 || i >= len(e.lines) {
		return ErrLineOutOfRange
	}
	if svc == nil {
		return nil
	}
	id := svc.ID
	l := &e.lines[i]
	l.ServiceID = &id
	l.Description = svc.Name
	l.UnitPrice = svc.UnitPrice
	l.Total = LineTotal(l.Quantity, l.UnitPrice)
	return nil
}

// SetQuantity cambia la cantidad de la línea i y recalcula su total.
func (e *Editor) SetQuantity(i int, q decimal.Decimal) error {
	if i < 0 || i >= len(e.lines) {
		return ErrLineOutOfRange
	}
	l := &e.lines[i]
	l.Quantity = q
	l.Total = LineTotal(l.Quantity, l.UnitPrice)
	return nil
}

// SetUnitPrice cambia el precio unitario de la línea i y recalcula su total.
func (e *Editor) SetUnitPrice(i int, p decimal.Decimal) error {
	if i < 0 || i >= len(e.lines) {
		return ErrLineOutOfRange
	}
	l := &e.lines[i]
	l.UnitPrice = p
	l.Total = LineTotal(l.Quantity, l.UnitPrice)
	return nil
}

// SetDescription cambia la descripción; no afecta el total.
func (e *Editor) SetDescription(i int, s string) error {
	if i < 0 || i >= len(e.lines) {
		return ErrLineOutOfRange
	}
	e.lines[i].Description = s
	return nil
}

// Total suma de los totales de las líneas.
func (e *Editor) Total() decimal.Decimal {
	return SumTotals(e.lines)
}
