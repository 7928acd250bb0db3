package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/serdvr66/orderQPro/entity"
)

var (
	ErrEntryNotFound = errors.New("cart entry not found")
	ErrBadPortion    = errors.New("portion must be between 1 and the entry quantity")
)

// CartService is the in-progress order: an ordered list of lines, merged by
// identity (item + canonical selection + note). Unit prices are fixed at add
// time; edits create distinct entries instead of repricing in place.
type CartService struct {
	log zerolog.Logger

	mu      sync.Mutex
	entries []entity.CartEntry
}

func NewCartService(log zerolog.Logger) *CartService {
	return &CartService{log: log}
}

// Add puts qty units of the item with the given selection and note into the
// cart. The add merges into an existing entry whose key matches exactly:
// same item, deep-equal selection, same note, no edit split. Anything else
// appends a new line.
func (s *CartService) Add(item entity.MenuItem, sel entity.Selection, note string, qty int) entity.CartKey {
	if qty <= 0 {
		qty = 1
	}
	delta := SelectionDelta(item, sel)
	unit := item.Price.Add(delta)
	key := entity.CartKey{ItemUUID: item.UUID, Fingerprint: sel.Fingerprint(), Note: note}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries[i].Quantity += qty
			s.entries[i].Recalc()
			return s.entries[i].Key
		}
	}

	entry := entity.CartEntry{
		Key:         key,
		Title:       item.Title,
		UnitPrice:   unit,
		ConfigDelta: delta,
		Quantity:    qty,
		Note:        note,
		Selection:   sel.Clone(),
	}
	entry.Recalc()
	s.entries = append(s.entries, entry)
	s.log.Debug().Str("item", item.Title).Int("qty", qty).Msg("added to cart")
	return key
}

// AddDefault is the quick-add path: one unit with the item's default
// selection and no note.
func (s *CartService) AddDefault(item entity.MenuItem) entity.CartKey {
	return s.Add(item, DefaultSelection(item), "", 1)
}

// RemoveOne decrements the entry by a single unit, deleting it at zero.
func (s *CartService) RemoveOne(key entity.CartKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Key != key {
			continue
		}
		if s.entries[i].Quantity > 1 {
			s.entries[i].Quantity--
			s.entries[i].Recalc()
		} else {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
		}
		return nil
	}
	return ErrEntryNotFound
}

// Edit carves portion units out of an entry and gives them a new selection
// and note at today's menu price for that configuration. The remainder keeps
// the original line (deleted when zero); the edited portion becomes a fresh
// entry with its own split suffix so it never silently merges back.
func (s *CartService) Edit(key entity.CartKey, portion int, item entity.MenuItem, newSel entity.Selection, newNote string) (entity.CartKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.entries {
		if s.entries[i].Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.CartKey{}, ErrEntryNotFound
	}
	if portion < 1 || portion > s.entries[idx].Quantity {
		return entity.CartKey{}, ErrBadPortion
	}

	delta := SelectionDelta(item, newSel)
	edited := entity.CartEntry{
		Key: entity.CartKey{
			ItemUUID:    item.UUID,
			Fingerprint: newSel.Fingerprint(),
			Note:        newNote,
			Split:       uuid.NewString(),
		},
		Title:       item.Title,
		UnitPrice:   item.Price.Add(delta),
		ConfigDelta: delta,
		Quantity:    portion,
		Note:        newNote,
		Selection:   newSel.Clone(),
	}
	edited.Recalc()

	remainder := s.entries[idx].Quantity - portion
	if remainder > 0 {
		s.entries[idx].Quantity = remainder
		s.entries[idx].Recalc()
		s.entries = append(s.entries, edited)
	} else {
		s.entries[idx] = edited
	}
	return edited.Key, nil
}

// Entries returns an ordered snapshot of the cart.
func (s *CartService) Entries() []entity.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CartEntry(nil), s.entries...)
}

func (s *CartService) Total() entity.Price {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total entity.Price
	for _, e := range s.entries {
		total = total.Add(e.Total)
	}
	return total
}

// ItemCount is the number of units across all lines.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, e := range s.entries {
		count += e.Quantity
	}
	return count
}

func (s *CartService) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries) == 0
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
