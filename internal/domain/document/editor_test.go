package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func consulting() *entity.Service {
	return &entity.Service{ID: "svc-1", Name: "Consulting", UnitPrice: dec("100"), Unit: "hour"}
}

func TestNewEditor_UnaLineaEnBlanco(t *testing.T) {
	e := document.NewEditor()
	require.Equal(t, 1, e.Len())

	l, err := e.Line(0)
	require.NoError(t, err)
	assert.Nil(t, l.ServiceID)
	assert.Equal(t, "", l.Description)
	assert.True(t, l.Quantity.Equal(dec("1")))
	assert.True(t, l.UnitPrice.IsZero())
	assert.True(t, l.Total.IsZero())
}

func TestAddLine_AgregaLineaEnBlanco(t *testing.T) {
	e := document.NewEditor()
	e.AddLine()
	require.Equal(t, 2, e.Len())
	l, _ := e.Line(1)
	assert.True(t, l.Quantity.Equal(dec("1")))
	assert.True(t, l.Total.IsZero())
}

func TestRemoveLine_NoEliminaLaUltima(t *testing.T) {
	e := document.NewEditor()
	assert.False(t, e.RemoveLine(0), "con una sola línea no se puede eliminar")
	assert.Equal(t, 1, e.Len())

	e.AddLine()
	require.NoError(t, e.SetDescription(1, "segunda"))
	assert.True(t, e.RemoveLine(0))
	require.Equal(t, 1, e.Len())
	l, _ := e.Line(0)
	assert.Equal(t, "segunda", l.Description)
}

func TestRemoveLine_FueraDeRango(t *testing.T) {
	e := document.NewEditor()
	e.AddLine()
	assert.False(t, e.RemoveLine(5))
	assert.False(t, e.RemoveLine(-1))
	assert.Equal(t, 2, e.Len())
}

func TestSelectService_PrecargaSoloLaLinea(t *testing.T) {
	e := document.NewEditor()
	e.AddLine()
	require.NoError(t, e.SetQuantity(0, dec("2")))
	require.NoError(t, e.SetDescription(1, "otra"))
	require.NoError(t, e.SetUnitPrice(1, dec("7")))

	require.NoError(t, e.SelectService(0, consulting()))

	l0, _ := e.Line(0)
	require.NotNil(t, l0.ServiceID)
	assert.Equal(t, "svc-1", *l0.ServiceID)
	assert.Equal(t, "Consulting", l0.Description)
	assert.True(t, l0.UnitPrice.Equal(dec("100")))
	assert.True(t, l0.Total.Equal(dec("200")), "total = precio × cantidad actual")

	l1, _ := e.Line(1)
	assert.Nil(t, l1.ServiceID)
	assert.Equal(t, "otra", l1.Description)
	assert.True(t, l1.Total.Equal(dec("7")))
}

func TestSetters_RecalculanTotal(t *testing.T) {
	e := document.NewEditor()
	cases := []struct {
		qty, price, want string
	}{
		{"1", "0", "0"},
		{"3", "12.5", "37.5"},
		{"0", "99", "0"},
		{"2.5", "10.10", "25.25"},
	}
	for _, tc := range cases {
		require.NoError(t, e.SetQuantity(0, dec(tc.qty)))
		require.NoError(t, e.SetUnitPrice(0, dec(tc.price)))
		l, _ := e.Line(0)
		assert.True(t, l.Total.Equal(dec(tc.want)), "qty=%s price=%s total=%s", tc.qty, tc.price, l.Total)
		assert.True(t, l.Total.Equal(l.Quantity.Mul(l.UnitPrice)))
	}
}

func TestSetDescription_NoAfectaTotal(t *testing.T) {
	e := document.NewEditor()
	require.NoError(t, e.SetUnitPrice(0, dec("40")))
	require.NoError(t, e.SetDescription(0, "Soporte"))
	l, _ := e.Line(0)
	assert.True(t, l.Total.Equal(dec("40")))
}

func TestTotal_SumaDeLineas(t *testing.T) {
	e := document.NewEditor()
	require.NoError(t, e.SelectService(0, consulting()))
	require.NoError(t, e.SetQuantity(0, dec("2")))
	e.AddLine()
	require.NoError(t, e.SetUnitPrice(1, dec("15.50")))
	require.NoError(t, e.SetQuantity(1, dec("3")))

	assert.True(t, e.Total().Equal(dec("246.5")))

	sum := decimal.Zero
	for _, l := range e.Lines() {
		sum = sum.Add(l.Total)
	}
	assert.True(t, e.Total().Equal(sum))
}

func TestLines_AsignaPosicion(t *testing.T) {
	e := document.NewEditor()
	e.AddLine()
	e.AddLine()
	for i, l := range e.Lines() {
		assert.Equal(t, i, l.Position)
	}
}

func TestSetters_FueraDeRango(t *testing.T) {
	e := document.NewEditor()
	assert.ErrorIs(t, e.SetQuantity(3, dec("1")), document.ErrLineOutOfRange)
	assert.ErrorIs(t, e.SetUnitPrice(3, dec("1")), document.ErrLineOutOfRange)
	assert.ErrorIs(t, e.SetDescription(3, "x"), document.ErrLineOutOfRange)
	assert.ErrorIs(t, e.SelectService(3, consulting()), document.ErrLineOutOfRange)
}

func TestNewEditorFrom_CopiaLineas(t *testing.T) {
	src := []entity.LineItem{{Description: "a", Quantity: dec("1"), UnitPrice: dec("2"), Total: dec("2")}}
	e := document.NewEditorFrom(src)
	require.NoError(t, e.SetDescription(0, "b"))
	assert.Equal(t, "a", src[0].Description, "el editor no debe modificar el slice de origen")

	assert.Equal(t, 1, document.NewEditorFrom(nil).Len())
}
