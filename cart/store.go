// Package cart holds the per-session shopping cart: an explicitly
// constructed store owning the line items, the open/closed panel flag and
// the derived totals, persisted to a durable snapshot slot on every items
// mutation.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/YannikAckermann/Vintage-Store/currency"
	"github.com/YannikAckermann/Vintage-Store/models"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Notifier receives a transient confirmation whenever an item lands in the
// cart. Presentation (toast, websocket push) lives with the implementation.
type Notifier interface {
	ItemAdded(name string)
}

type noopNotifier struct{}

func (noopNotifier) ItemAdded(string) {}

// Store is the single source of truth for one session's cart. Aggregates
// are recomputed after every mutation; the full item sequence is written to
// the snapshot slot each time items change.
type Store struct {
	mu         sync.Mutex
	key        string
	items      []models.CartLineItem
	isOpen     bool
	totalItems int
	subtotal   decimal.Decimal
	storage    Storage
	notifier   Notifier
}

// NewStore builds a store over the given snapshot slot key. A nil notifier
// is replaced with a no-op.
func NewStore(key string, storage Storage, notifier Notifier) *Store {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	s := &Store{key: key, storage: storage, notifier: notifier}
	s.restore()
	return s
}

// AddItem copies the product's display fields into a line item. An already
// present product gets its quantity incremented instead of a second line.
// Adding always opens the cart panel. A price that does not parse is
// rejected here so malformed catalog rows can never poison the totals.
func (s *Store) AddItem(p models.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if _, err := currency.Parse(p.Price); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += quantity
			s.isOpen = true
			s.recalcAndPersistLocked()
			s.mu.Unlock()
			s.notifier.ItemAdded(p.Name)
			return nil
		}
	}
	s.items = append(s.items, models.CartLineItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    quantity,
	})
	s.isOpen = true
	s.recalcAndPersistLocked()
	s.mu.Unlock()

	s.notifier.ItemAdded(p.Name)
	return nil
}

// RemoveItem drops the line with the given product id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveItem(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// UpdateQuantity sets a line's quantity to an absolute value. Zero or
// negative removes the line; unknown ids are a no-op.
func (s *Store) UpdateQuantity(id uint, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.recalcAndPersistLocked()
			return
		}
	}
}

// Clear empties the cart. The panel flag is left alone so the confirmation
// view stays visible after checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.recalcAndPersistLocked()
}

// SetOpen toggles panel visibility only; items are never touched.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = open
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

// Subtotal is the display-form sum of price x quantity, e.g. "Fr. 25.50".
func (s *Store) Subtotal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return currency.Format(s.subtotal)
}

// SubtotalValue exposes the numeric subtotal for total computation in
// checkout.
func (s *Store) SubtotalValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotal
}

func (s *Store) removeLocked(id uint) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recalcAndPersistLocked()
			return
		}
	}
}

// recalcLocked re-derives the aggregates. Lines whose price no longer
// parses contribute nothing to the subtotal; AddItem rejects them up front,
// so this only matters for hand-edited snapshots.
func (s *Store) recalcLocked() {
	count := 0
	sum := decimal.Zero
	for _, item := range s.items {
		count += item.Quantity
		if price, err := currency.Parse(item.Price); err == nil {
			sum = sum.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	s.totalItems = count
	s.subtotal = sum
}

func (s *Store) recalcAndPersistLocked() {
	s.recalcLocked()
	s.persistLocked()
}
