// Package orders genera el documento de orden de compra de la sucursal activa
// y administra el contador de folios por sucursal.
package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hendaya/pedidos-api/internal/application/inventory"
	"github.com/hendaya/pedidos-api/internal/domain"
	"github.com/hendaya/pedidos-api/internal/domain/catalog"
	"github.com/hendaya/pedidos-api/internal/domain/entity"
	"github.com/hendaya/pedidos-api/internal/domain/repository"
)

// nameColumnWidth ancho de la columna de nombre en el documento de texto.
const nameColumnWidth = 35

const separator = "================================================="

// UseCase genera órdenes de compra en texto plano o PDF. El mutex serializa el
// leer-incrementar-escribir del contador de folios dentro del proceso: dos
// generaciones simultáneas nunca emiten el mismo folio.
type UseCase struct {
	store *inventory.Store
	kv    repository.KVStore
	clock Clock
	pdf   PDFRenderer

	mu sync.Mutex
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *inventory.Store, kv repository.KVStore, clock Clock, pdf PDFRenderer) *UseCase {
	return &UseCase{store: store, kv: kv, clock: clock, pdf: pdf}
}

// Document es el resultado de una generación: el folio asignado, el nombre de
// archivo sugerido y el contenido del documento.
type Document struct {
	Folio      string `json:"folio"`
	FileName   string `json:"file_name"`
	Content    []byte `json:"-"`
	Document   string `json:"document,omitempty"`
	TotalUnits int    `json:"total_units"`
}

// Generate produce la orden de compra en texto plano de la sucursal activa y
// avanza el contador de folios. Sin líneas con cantidad > 0 devuelve
// domain.ErrEmptyOrder y no muta nada.
func (uc *UseCase) Generate(ctx context.Context) (*Document, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	order, next, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}

	text := renderText(order)

	// El contador avanza solo después de construir el documento con éxito.
	if err := uc.advanceSequence(ctx, order.Branch.ID, next); err != nil {
		return nil, err
	}

	return &Document{
		Folio:      order.Folio,
		FileName:   fileName(order, "txt"),
		Content:    []byte(text),
		Document:   text,
		TotalUnits: order.TotalUnits,
	}, nil
}

// GeneratePDF produce la misma orden como PDF. Comparte con Generate la
// selección de líneas, la asignación de folio y el avance del contador.
func (uc *UseCase) GeneratePDF(ctx context.Context) (*Document, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	order, next, err := uc.build(ctx)
	if err != nil {
		return nil, err
	}

	content, err := uc.pdf.RenderOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("renderizar orden PDF: %w", err)
	}

	if err := uc.advanceSequence(ctx, order.Branch.ID, next); err != nil {
		return nil, err
	}

	return &Document{
		Folio:      order.Folio,
		FileName:   fileName(order, "pdf"),
		Content:    content,
		TotalUnits: order.TotalUnits,
	}, nil
}

// build selecciona las líneas con cantidad > 0 (orden de catálogo), lee el
// contador de la sucursal y arma la orden con el siguiente folio. No muta
// estado: el avance del contador es responsabilidad del caller.
func (uc *UseCase) build(ctx context.Context) (*Order, int, error) {
	branch := uc.store.ActiveBranch()

	view := uc.store.View()
	items := make([]entity.ViewEntry, 0, len(view))
	total := 0
	for _, e := range view {
		if e.Quantity > 0 {
			items = append(items, e)
			total += e.Quantity
		}
	}
	if len(items) == 0 {
		return nil, 0, domain.ErrEmptyOrder
	}

	seq, err := uc.readSequence(ctx, branch.ID)
	if err != nil {
		return nil, 0, err
	}
	next := seq + 1

	return &Order{
		Folio:      fmt.Sprintf("%s-%04d", catalog.PrefixFor(branch.ID), next),
		Branch:     branch,
		IssuedAt:   uc.clock.Now(),
		Items:      items,
		TotalUnits: total,
	}, next, nil
}

// readSequence lee el contador de folios; clave ausente o ilegible vale 0.
func (uc *UseCase) readSequence(ctx context.Context, branchID string) (int, error) {
	raw, ok, err := uc.kv.Get(ctx, repository.SequenceKey(branchID))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

func (uc *UseCase) advanceSequence(ctx context.Context, branchID string, next int) error {
	return uc.kv.Set(ctx, repository.SequenceKey(branchID), strconv.Itoa(next))
}

// renderText arma el documento de texto plano de la orden.
func renderText(o *Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ORDEN DE COMPRA N° %s\n", o.Folio)
	fmt.Fprintf(&b, "SUCURSAL: %s\n", strings.ToUpper(o.Branch.Name))
	fmt.Fprintf(&b, "FECHA EMISIÓN: %s\n", o.IssuedAt.Format("02/01/2006 15:04:05"))
	b.WriteString(separator + "\n\n")
	b.WriteString("DETALLE DE PRODUCTOS:\n")
	b.WriteString("(Formato: Nombre ...................... Stock Actual | A Pedir)\n\n")

	for _, it := range o.Items {
		fmt.Fprintf(&b, "[ ] %s STOCK: %-4d | CANT: %d\n", padDots(it.Name, nameColumnWidth), it.Stock, it.Quantity)
	}

	b.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&b, "TOTAL ÍTEMS A PEDIR: %d\n", o.TotalUnits)
	return b.String()
}

// fileName deriva el nombre de archivo: OC_{folio}_{sucursal sin espacios}.{ext}
func fileName(o *Order, ext string) string {
	name := strings.Join(strings.Fields(o.Branch.Name), "")
	return fmt.Sprintf("OC_%s_%s.%s", o.Folio, name, ext)
}

// padDots rellena el nombre con puntos hasta el ancho de columna (en runas).
// Nombres más largos se dejan intactos.
func padDots(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(".", width-n)
}
