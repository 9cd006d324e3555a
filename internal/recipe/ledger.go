package recipe

import "math"

// Ledger is the ordered collection of ingredient rows backing a recipe. It
// always holds at least one row and mints identifiers from a counter that only
// moves forward, so an id is never handed out twice.
//
// A Ledger is not safe for concurrent use; it belongs to a single request or
// command at a time.
type Ledger struct {
	items   []Ingredient
	index   map[int]int
	nextID  int
	version uint64
}

// NewLedger returns a ledger holding a single empty row with id 0.
func NewLedger() *Ledger {
	l := &Ledger{}
	l.items = []Ingredient{EmptyIngredient(0)}
	l.nextID = 1
	l.reindex()
	return l
}

// RestoreLedger builds a ledger from previously captured rows. The counter
// resumes after the highest id present. Rows whose id is negative or already
// taken are re-keyed with freshly minted ids, as is the largest int, which
// would leave the counter nowhere to go.
func RestoreLedger(items []Ingredient, nextID int) *Ledger {
	if len(items) == 0 {
		if nextID <= 0 {
			return NewLedger()
		}
		l := &Ledger{nextID: nextID}
		l.items = []Ingredient{EmptyIngredient(l.mint())}
		l.reindex()
		return l
	}

	l := &Ledger{items: make([]Ingredient, 0, len(items))}
	seen := make(map[int]struct{}, len(items))
	next := nextID
	if next < 0 {
		next = 0
	}
	for _, item := range items {
		if validID(item.ID) && item.ID >= next {
			next = item.ID + 1
		}
	}
	l.nextID = next

	for _, item := range items {
		if _, dup := seen[item.ID]; dup || !validID(item.ID) {
			item.ID = l.mint()
		}
		seen[item.ID] = struct{}{}
		l.items = append(l.items, item)
	}
	l.reindex()
	return l
}

// Add appends a fresh empty row and returns it.
func (l *Ledger) Add() Ingredient {
	item := EmptyIngredient(l.mint())
	l.items = append(l.items, item)
	l.index[item.ID] = len(l.items) - 1
	l.version++
	return item
}

// Update applies mutate to the row with the given id. A missing id is not an
// error: the row may have been removed by an earlier event, and the call
// reports false without touching the ledger. The id itself cannot be changed.
func (l *Ledger) Update(id int, mutate func(*Ingredient)) bool {
	pos, ok := l.index[id]
	if !ok || mutate == nil {
		return false
	}
	item := l.items[pos]
	mutate(&item)
	item.ID = id
	if item == l.items[pos] {
		return true
	}
	l.items[pos] = item
	l.version++
	return true
}

// SetField stores raw text into one column of a row.
func (l *Ledger) SetField(id int, field Field, value string) bool {
	return l.Update(id, func(item *Ingredient) {
		field.Set(item, value)
	})
}

// Remove deletes the row with the given id. Removing the last row replaces it
// with a fresh empty one so the ledger is never empty.
func (l *Ledger) Remove(id int) bool {
	pos, ok := l.index[id]
	if !ok {
		return false
	}
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	if len(l.items) == 0 {
		l.items = append(l.items, EmptyIngredient(l.mint()))
	}
	l.reindex()
	l.version++
	return true
}

// Get returns a copy of the row with the given id.
func (l *Ledger) Get(id int) (Ingredient, bool) {
	pos, ok := l.index[id]
	if !ok {
		return Ingredient{}, false
	}
	return l.items[pos], true
}

// Items returns a copy of the rows in ledger order.
func (l *Ledger) Items() []Ingredient {
	out := make([]Ingredient, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the number of rows.
func (l *Ledger) Len() int { return len(l.items) }

// CanRemove reports whether removing a row would leave other rows behind.
func (l *Ledger) CanRemove() bool { return len(l.items) > 1 }

// NextID is the identifier the next minted row will receive.
func (l *Ledger) NextID() int { return l.nextID }

// Version increases on every effective mutation.
func (l *Ledger) Version() uint64 { return l.version }

func validID(id int) bool {
	return id >= 0 && id < math.MaxInt
}

func (l *Ledger) mint() int {
	id := l.nextID
	l.nextID++
	return id
}

func (l *Ledger) reindex() {
	l.index = make(map[int]int, len(l.items))
	for pos, item := range l.items {
		l.index[item.ID] = pos
	}
}
