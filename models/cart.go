package models

// Cart maps product identifiers to desired quantities. Every stored
// quantity is >= 1; removal happens by deleting the key. Insertion order
// carries no meaning.
type Cart map[string]int

// TotalItems returns the total number of units across all entries.
func (c Cart) TotalItems() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}
