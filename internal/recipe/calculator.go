package recipe

import "strings"

// State is the serializable form of a calculator between requests.
type State struct {
	Name        string
	Ingredients []Ingredient
	NextID      int
}

// Calculator ties a ledger, its totals, and the address-bar bridge together.
// Every mutation is applied to the ledger first; totals are then recomputed
// lazily and the bridge pushes the new share fragment.
type Calculator struct {
	ledger *Ledger
	name   string
	totals *Engine
	bridge *Bridge
}

// Start seeds a calculator from the host's fragment and immediately pushes the
// canonical fragment for the loaded state.
func Start(location Location) *Calculator {
	return Open(NewBridge(location))
}

// Open is Start for a bridge the caller has already configured, e.g. with a
// decode error hook.
func Open(bridge *Bridge) *Calculator {
	ledger, name := bridge.Load()
	c := newCalculator(ledger, name, bridge)
	c.sync()
	return c
}

// Resume rebuilds a calculator from captured state without reading the
// fragment. Mutations push to location as usual.
func Resume(state State, location Location) *Calculator {
	ledger := RestoreLedger(state.Ingredients, state.NextID)
	return newCalculator(ledger, state.Name, NewBridge(location))
}

// FromRecipe builds a detached calculator, useful for read-only summaries.
func FromRecipe(r Recipe) *Calculator {
	return newCalculator(RestoreLedger(r.Ingredients, 0), r.Name, NewBridge(nil))
}

func newCalculator(ledger *Ledger, name string, bridge *Bridge) *Calculator {
	return &Calculator{
		ledger: ledger,
		name:   name,
		totals: NewEngine(ledger),
		bridge: bridge,
	}
}

// Bridge exposes the sync bridge, e.g. to install a decode error hook.
func (c *Calculator) Bridge() *Bridge { return c.bridge }

// AddIngredient appends an empty row.
func (c *Calculator) AddIngredient() Ingredient {
	item := c.ledger.Add()
	c.sync()
	return item
}

// UpdateIngredient mutates a row in place; unknown ids are ignored.
func (c *Calculator) UpdateIngredient(id int, mutate func(*Ingredient)) bool {
	ok := c.ledger.Update(id, mutate)
	if ok {
		c.sync()
	}
	return ok
}

// SetField stores raw text into one column of a row.
func (c *Calculator) SetField(id int, field Field, value string) bool {
	ok := c.ledger.SetField(id, field, value)
	if ok {
		c.sync()
	}
	return ok
}

// RemoveIngredient deletes a row; unknown ids are ignored.
func (c *Calculator) RemoveIngredient(id int) bool {
	ok := c.ledger.Remove(id)
	if ok {
		c.sync()
	}
	return ok
}

// SetName changes the recipe name.
func (c *Calculator) SetName(name string) {
	if name == c.name {
		return
	}
	c.name = name
	c.sync()
}

// Name is the recipe name as typed.
func (c *Calculator) Name() string { return c.name }

// Title is the name used for printed summaries.
func (c *Calculator) Title() string {
	if strings.TrimSpace(c.name) == "" {
		return "Recipe breakdown"
	}
	return c.name
}

// Ingredients returns a copy of the rows.
func (c *Calculator) Ingredients() []Ingredient { return c.ledger.Items() }

// Ingredient returns a copy of one row.
func (c *Calculator) Ingredient(id int) (Ingredient, bool) { return c.ledger.Get(id) }

// CanRemove reports whether rows may currently be removed.
func (c *Calculator) CanRemove() bool { return c.ledger.CanRemove() }

// Totals returns the recipe-wide macros.
func (c *Calculator) Totals() Macros { return c.totals.Totals() }

// Rows returns per-row snapshots.
func (c *Calculator) Rows() []RowSnapshot { return c.totals.Rows() }

// Row returns the snapshot of one row.
func (c *Calculator) Row(id int) (RowSnapshot, bool) { return c.totals.Row(id) }

// Ratio is the formatted recipe-wide P:E ratio.
func (c *Calculator) Ratio() string { return c.totals.Ratio() }

// Recipe returns the name and a copy of the rows.
func (c *Calculator) Recipe() Recipe {
	return Recipe{Name: c.name, Ingredients: c.ledger.Items()}
}

// Token encodes the current state.
func (c *Calculator) Token() (string, error) {
	return Encode(c.ledger.items, c.name)
}

// State captures everything needed to Resume later.
func (c *Calculator) State() State {
	return State{
		Name:        c.name,
		Ingredients: c.ledger.Items(),
		NextID:      c.ledger.NextID(),
	}
}

func (c *Calculator) sync() {
	c.bridge.Push(c.ledger.items, c.name)
}
