package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hendaya/pedidos-api/internal/application/orders"
	"github.com/hendaya/pedidos-api/internal/domain/entity"
	"github.com/hendaya/pedidos-api/internal/infrastructure/pdf"
)

func TestRenderOrder_GeneraPDFValido(t *testing.T) {
	g := pdf.NewMarotoOrderGenerator()

	order := &orders.Order{
		Folio:    "HEN-0004",
		Branch:   entity.Branch{ID: "hendaya", Name: "Hendaya"},
		IssuedAt: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		Items: []entity.ViewEntry{
			{
				Product:  entity.Product{ID: "ase-1", Name: "Cloro Gel", Category: entity.CategoryAseo},
				Stock:    2,
				Quantity: 10,
			},
		},
		TotalUnits: 10,
	}

	got, err := g.RenderOrder(context.Background(), order)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "el contenido debe ser un PDF")
}
