package domain

// Item is a product offered by the machine.
type Item struct {
	Name  string
	Price int64 // minor currency units
}

// Catalog is the ordered list of items. Order defines the selection index.
type Catalog []Item

// Lookup returns the item at a 0-based display index.
func (c Catalog) Lookup(index int) (Item, bool) {
	if index < 0 || index >= len(c) {
		return Item{}, false
	}
	return c[index], true
}

// Denominations is an ordered set of coin or note values in minor currency units.
type Denominations []int64

// At returns the denomination at a 0-based display index.
func (d Denominations) At(index int) (int64, bool) {
	if index < 0 || index >= len(d) {
		return 0, false
	}
	return d[index], true
}

// Contains reports whether v is one of the denominations.
func (d Denominations) Contains(v int64) bool {
	for _, x := range d {
		if x == v {
			return true
		}
	}
	return false
}

// Machine describes the immutable tables a machine is configured with.
type Machine struct {
	// Funding lists the amounts accepted when adding funds, in display order.
	Funding Denominations

	// Change lists the amounts the machine can hand back.
	Change Denominations

	// Catalog lists the items for sale, in display order.
	Catalog Catalog
}
