package recipe

// RowTotals returns the macros contributed by one row: each per-serving value
// multiplied by the servings used.
func RowTotals(item Ingredient) Macros {
	return item.PerServing().Scale(item.ServingsUsed())
}

// GrandTotals sums RowTotals over items in order.
func GrandTotals(items []Ingredient) Macros {
	var total Macros
	for _, item := range items {
		total = total.Add(RowTotals(item))
	}
	return total
}

// RowSnapshot is the read-only view of a row consumed by summaries and
// print layouts.
type RowSnapshot struct {
	ID         int
	Name       string
	PerServing Macros
	Servings   float64
	Total      Macros
}

// Ratio formats the row's P:E ratio.
func (r RowSnapshot) Ratio() string {
	return FormatRatio(r.Total)
}

// Snapshot captures the sanitized numbers of a row.
func Snapshot(item Ingredient) RowSnapshot {
	per := item.PerServing()
	servings := item.ServingsUsed()
	return RowSnapshot{
		ID:         item.ID,
		Name:       item.DisplayName(),
		PerServing: per,
		Servings:   servings,
		Total:      per.Scale(servings),
	}
}

// Engine derives totals from a ledger and caches them until the ledger
// changes. Reading totals twice without an intervening mutation does no work.
type Engine struct {
	ledger  *Ledger
	valid   bool
	version uint64
	rows    []RowSnapshot
	byID    map[int]int
	total   Macros

	recomputes int
}

// NewEngine binds an engine to a ledger.
func NewEngine(ledger *Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// Totals returns the recipe-wide macros.
func (e *Engine) Totals() Macros {
	e.refresh()
	return e.total
}

// Rows returns per-row snapshots in ledger order.
func (e *Engine) Rows() []RowSnapshot {
	e.refresh()
	out := make([]RowSnapshot, len(e.rows))
	copy(out, e.rows)
	return out
}

// Row returns the snapshot for a single row.
func (e *Engine) Row(id int) (RowSnapshot, bool) {
	e.refresh()
	pos, ok := e.byID[id]
	if !ok {
		return RowSnapshot{}, false
	}
	return e.rows[pos], true
}

// Ratio formats the recipe-wide P:E ratio.
func (e *Engine) Ratio() string {
	return FormatRatio(e.Totals())
}

func (e *Engine) refresh() {
	if e.valid && e.version == e.ledger.Version() {
		return
	}
	items := e.ledger.items
	e.rows = make([]RowSnapshot, 0, len(items))
	e.byID = make(map[int]int, len(items))
	e.total = Macros{}
	for _, item := range items {
		snap := Snapshot(item)
		e.byID[item.ID] = len(e.rows)
		e.rows = append(e.rows, snap)
		e.total = e.total.Add(snap.Total)
	}
	e.version = e.ledger.Version()
	e.valid = true
	e.recomputes++
}
