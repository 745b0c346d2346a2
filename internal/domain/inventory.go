package domain

// InventoryEntry is one (user, item) row. Count is always >= 1.
type InventoryEntry struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Inventory is a user's items, ordered by item name
type Inventory struct {
	UserID  string           `json:"user_id"`
	Entries []InventoryEntry `json:"entries"`
}

// Count returns how many of item the inventory holds
func (inv Inventory) Count(item string) int {
	for _, e := range inv.Entries {
		if e.Item == item {
			return e.Count
		}
	}
	return 0
}

// IsEmpty reports whether the inventory has no entries
func (inv Inventory) IsEmpty() bool {
	return len(inv.Entries) == 0
}

// Total returns the sum of all item counts
func (inv Inventory) Total() int {
	total := 0
	for _, e := range inv.Entries {
		total += e.Count
	}
	return total
}
