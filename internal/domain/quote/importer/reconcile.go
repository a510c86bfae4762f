package importer

import "quote-crm/backend/internal/domain/quote"

// Reconcile merges batch into current by id. An id keeps the position of its
// first occurrence across current-then-batch and takes the value of its last
// write. createdAt of a record already in the collection is preserved.
func Reconcile(current, batch []quote.Quote) []quote.Quote {
	out := make([]quote.Quote, 0, len(current)+len(batch))
	index := make(map[string]int, len(current)+len(batch))

	put := func(q quote.Quote) {
		if i, ok := index[q.ID]; ok {
			if out[i].CreatedAt != "" {
				q.CreatedAt = out[i].CreatedAt
			}
			out[i] = q
			return
		}
		index[q.ID] = len(out)
		out = append(out, q)
	}

	for _, q := range current {
		put(q)
	}
	for _, q := range batch {
		put(q)
	}
	return out
}
