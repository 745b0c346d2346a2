package domain

import "time"

// ShopItem is one purchasable catalog line
type ShopItem struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// Catalog is the static, ordered shop listing. Position i (0-based) is
// offered to users as index token i+1.
type Catalog []ShopItem

// DefaultCatalog returns the shop stock in display order
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: ItemCar, Label: "🚗 Car", Price: 5000},
		{Name: ItemHouse, Label: "🏡 House", Price: 1000},
		{Name: ItemHelicopter, Label: "🚁 Helicopter", Price: 10000},
		{Name: ItemCake, Label: "🎂 Cake", Price: 2000},
		{Name: ItemCoconut, Label: "🥥 Coconut", Price: 3500},
		{Name: ItemIsland, Label: "🏝️ Island", Price: 15000},
		{Name: ItemBurger, Label: "🍔 Burger", Price: 150},
		{Name: ItemIphone, Label: "📱 Iphone", Price: 25000},
		{Name: ItemImac, Label: "🖥️ Imac", Price: 100000},
	}
}

// At resolves a 1-based index token to its item
func (c Catalog) At(index int) (ShopItem, bool) {
	if index < 1 || index > len(c) {
		return ShopItem{}, false
	}
	return c[index-1], true
}

// Lookup finds an item by name
func (c Catalog) Lookup(name string) (ShopItem, bool) {
	for _, item := range c {
		if item.Name == name {
			return item, true
		}
	}
	return ShopItem{}, false
}

// CatalogEntry is one rendered line of a presented catalog
type CatalogEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Price int64  `json:"price"`
	Owned int    `json:"owned,omitempty"`
}

// CatalogPresentation asks the rendering layer to show a catalog and collect
// one index selection for Token before Deadline.
type CatalogPresentation struct {
	Token    string         `json:"token"`
	UserID   string         `json:"user_id"`
	Entries  []CatalogEntry `json:"entries"`
	Deadline time.Time      `json:"deadline"`
}

// Selection is the signal sent back by the UI layer when a user picks an entry
type Selection struct {
	UserID       string `json:"user_id"`
	CatalogToken string `json:"catalog_token"`
	Index        int    `json:"index"`
}

// SelectionStatus reports what happened to a Selection signal
type SelectionStatus int

const (
	// SelectionAccepted means the pick was queued for the waiting flow
	SelectionAccepted SelectionStatus = iota
	// SelectionIgnored means the catalog is live but the signal does not apply
	// (another user, an index outside the catalog, or a pick already queued)
	SelectionIgnored
	// SelectionRejected means the catalog token is unknown, resolved or expired
	SelectionRejected
)

func (s SelectionStatus) String() string {
	switch s {
	case SelectionAccepted:
		return "accepted"
	case SelectionIgnored:
		return "ignored"
	case SelectionRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
