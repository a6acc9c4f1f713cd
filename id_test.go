package tracker

import "testing"

func TestNewIDUniqueAndSortable(t *testing.T) {
	const n = 1000
	seen := make(map[string]bool, n)
	prev := ""
	for i := 0; i < n; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		// ids generated in sequence sort in generation order
		if id <= prev {
			t.Fatalf("id %s not greater than previous %s", id, prev)
		}
		prev = id
	}
}
