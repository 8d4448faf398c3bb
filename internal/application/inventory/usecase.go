// Package inventory implementa el gestor de estado de inventario por sucursal:
// reconstruye la vista de trabajo (catálogo + stock + orden en curso), aplica
// mutaciones de stock y cantidad a pedir, y persiste cada cambio de inmediato.
package inventory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hendaya/pedidos-api/internal/domain"
	"github.com/hendaya/pedidos-api/internal/domain/catalog"
	"github.com/hendaya/pedidos-api/internal/domain/entity"
	"github.com/hendaya/pedidos-api/internal/domain/repository"
)

// lowStockThreshold umbral bajo el cual un producto cuenta como stock bajo.
const lowStockThreshold = 5

// Store es el dueño único de la vista de trabajo de la sucursal activa.
// Toda mutación pasa por sus métodos y se persiste en el acto; no hay
// estado global fuera de esta estructura.
type Store struct {
	kv repository.KVStore

	mu     sync.Mutex
	branch entity.Branch
	view   []entity.ViewEntry
}

// NewStore restaura la sucursal seleccionada (o la primera registrada si la
// clave falta o trae un ID desconocido), carga su vista de trabajo y la
// persiste para dejar ambos documentos normalizados desde el arranque.
func NewStore(ctx context.Context, kv repository.KVStore) (*Store, error) {
	branch := catalog.DefaultBranch()
	id, ok, err := kv.Get(ctx, repository.SelectedBranchKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if b, found := catalog.FindBranch(id); found {
			branch = b
		}
	}

	s := &Store{kv: kv, branch: branch}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildView reconstruye la vista de trabajo de una sucursal desde los
// documentos persistidos. Operación total: documentos ausentes o ilegibles se
// tratan como conjuntos vacíos, y siempre devuelve una entrada por producto
// del catálogo, en orden de catálogo.
func BuildView(ctx context.Context, kv repository.KVStore, branchID string) ([]entity.ViewEntry, error) {
	stockByID, err := loadStockRecords(ctx, kv, branchID)
	if err != nil {
		return nil, err
	}
	qtyByID, err := loadOrderLines(ctx, kv, branchID)
	if err != nil {
		return nil, err
	}

	view := make([]entity.ViewEntry, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		view = append(view, entity.ViewEntry{
			Product:  p,
			Stock:    clampNonNegative(stockByID[p.ID]),
			Quantity: clampNonNegative(qtyByID[p.ID]),
		})
	}
	return view, nil
}

// ActiveBranch devuelve la sucursal activa.
func (s *Store) ActiveBranch() entity.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.branch
}

// View devuelve una copia de la vista de trabajo actual.
func (s *Store) View() []entity.ViewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.ViewEntry, len(s.view))
	copy(out, s.view)
	return out
}

// SwitchBranch cambia la sucursal activa, guarda la selección y reconstruye la
// vista de trabajo desde los documentos de la nueva sucursal.
func (s *Store) SwitchBranch(ctx context.Context, branchID string) error {
	b, found := catalog.FindBranch(branchID)
	if !found {
		return domain.ErrUnknownBranch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Construir la vista de la nueva sucursal antes de comprometer nada: si la
	// carga falla, el store sigue apuntando a la sucursal anterior con su vista
	// intacta y ningún documento cambia de dueño.
	view, err := BuildView(ctx, s.kv, b.ID)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, repository.SelectedBranchKey, b.ID); err != nil {
		return err
	}
	s.branch = b
	s.view = view
	return s.persistLocked(ctx)
}

// SetStock fija el stock de un producto, recortado a >= 0, y persiste.
// Un producto fuera del catálogo se ignora en silencio: la vista siempre
// cubre el catálogo completo, así que solo puede ocurrir por un caller roto.
func (s *Store) SetStock(ctx context.Context, productID string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.view {
		if s.view[i].ID == productID {
			s.view[i].Stock = clampNonNegative(stock)
			break
		}
	}
	return s.persistLocked(ctx)
}

// SetOrderQuantity fija la cantidad a pedir de un producto, recortada a >= 0,
// y persiste. Mismo tratamiento de producto desconocido que SetStock.
func (s *Store) SetOrderQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.view {
		if s.view[i].ID == productID {
			s.view[i].Quantity = clampNonNegative(quantity)
			break
		}
	}
	return s.persistLocked(ctx)
}

// Persist reescribe los dos documentos de la sucursal activa desde la vista:
// el de stock con todas las entradas (incluidas las de stock 0) y el de orden
// solo con cantidades > 0.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

// ClearOrder deja en 0 todas las cantidades a pedir de la sucursal activa y persiste.
func (s *Store) ClearOrder(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.view {
		s.view[i].Quantity = 0
	}
	return s.persistLocked(ctx)
}

// reload recarga y persiste la vista de la sucursal activa.
func (s *Store) reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

func (s *Store) reloadLocked(ctx context.Context) error {
	view, err := BuildView(ctx, s.kv, s.branch.ID)
	if err != nil {
		return err
	}
	s.view = view
	// Persistir tras cargar mantiene simétricos los flujos de carga y mutación.
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	stocks := make([]entity.StockRecord, 0, len(s.view))
	lines := make([]entity.OrderLine, 0)
	for _, e := range s.view {
		stocks = append(stocks, entity.StockRecord{ProductID: e.ID, Stock: e.Stock})
		if e.Quantity > 0 {
			lines = append(lines, entity.OrderLine{ProductID: e.ID, Quantity: e.Quantity})
		}
	}

	invDoc, err := json.Marshal(stocks)
	if err != nil {
		return err
	}
	ordDoc, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, repository.InventoryKey(s.branch.ID), string(invDoc)); err != nil {
		return err
	}
	return s.kv.Set(ctx, repository.CurrentOrderKey(s.branch.ID), string(ordDoc))
}

// loadStockRecords lee el documento de stock; ausente o ilegible -> vacío.
func loadStockRecords(ctx context.Context, kv repository.KVStore, branchID string) (map[string]int, error) {
	raw, ok, err := kv.Get(ctx, repository.InventoryKey(branchID))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int)
	if !ok {
		return byID, nil
	}
	var records []entity.StockRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return byID, nil
	}
	for _, r := range records {
		byID[r.ProductID] = r.Stock
	}
	return byID, nil
}

// loadOrderLines lee el documento de orden en curso; ausente o ilegible -> vacío.
func loadOrderLines(ctx context.Context, kv repository.KVStore, branchID string) (map[string]int, error) {
	raw, ok, err := kv.Get(ctx, repository.CurrentOrderKey(branchID))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int)
	if !ok {
		return byID, nil
	}
	var lines []entity.OrderLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return byID, nil
	}
	for _, l := range lines {
		byID[l.ProductID] = l.Quantity
	}
	return byID, nil
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
