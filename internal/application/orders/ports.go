package orders

import (
	"context"
	"time"

	"github.com/hendaya/pedidos-api/internal/domain/entity"
)

// Clock fuente de hora de emisión, inyectable para tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj de pared del sistema.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Order es una orden de compra lista para renderizar: folio asignado,
// sucursal, hora de emisión y las líneas con cantidad a pedir en orden
// de catálogo.
type Order struct {
	Folio      string
	Branch     entity.Branch
	IssuedAt   time.Time
	Items      []entity.ViewEntry
	TotalUnits int
}

// PDFRenderer renderiza la orden como documento PDF.
type PDFRenderer interface {
	RenderOrder(ctx context.Context, o *Order) ([]byte, error)
}
