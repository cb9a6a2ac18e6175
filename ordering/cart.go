package ordering

import (
	"sort"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"foodtruck/apperr"
)

// CartLine is one item held in a cart.
type CartLine struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Carts holds every live cart keyed by the owning principal's email.
// Carts are session-scoped and in-memory only: a restart empties them,
// and checkout clears the owner's cart.
type Carts struct {
	mu      sync.Mutex
	byOwner map[string]map[string]CartLine
}

func NewCarts() *Carts {
	return &Carts{byOwner: make(map[string]map[string]CartLine)}
}

func (c *Carts) Add(owner, item string, price decimal.Decimal, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	cart := c.byOwner[owner]
	if cart == nil {
		cart = make(map[string]CartLine)
		c.byOwner[owner] = cart
	}
	line := cart[item]
	line.Price = price
	line.Quantity += qty
	cart[item] = line
}

// SetQuantity updates a line; zero or negative removes it.
func (c *Carts) SetQuantity(owner, item string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cart := c.byOwner[owner]
	line, ok := cart[item]
	if !ok {
		return apperr.NotFoundf("cart item %q", item)
	}
	if qty < 1 {
		delete(cart, item)
		return nil
	}
	line.Quantity = qty
	cart[item] = line
	return nil
}

func (c *Carts) Remove(owner, item string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byOwner[owner][item]; !ok {
		return apperr.NotFoundf("cart item %q", item)
	}
	delete(c.byOwner[owner], item)
	return nil
}

// Get returns a copy of the owner's cart.
func (c *Carts) Get(owner string) map[string]CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	cart := make(map[string]CartLine, len(c.byOwner[owner]))
	for name, line := range c.byOwner[owner] {
		cart[name] = line
	}
	return cart
}

func (c *Carts) Subtotal(owner string) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, line := range c.byOwner[owner] {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Summary renders the cart as the free-text item list an order stores,
// "<name> x<qty>" comma-separated, item names sorted for a stable result.
func (c *Carts) Summary(owner string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.byOwner[owner]))
	for name := range c.byOwner[owner] {
		names = append(names, name)
	}
	sort.Strings(names)
	summary := ""
	for i, name := range names {
		if i > 0 {
			summary += ", "
		}
		summary += name + " x" + strconv.Itoa(c.byOwner[owner][name].Quantity)
	}
	return summary
}

func (c *Carts) Clear(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byOwner, owner)
}
