// Package book holds the working set of quotes and writes it back to storage
// after every change.
package book

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"quote-crm/backend/internal/domain/quote"
	"quote-crm/backend/internal/domain/quote/importer"
)

var ErrNotFound = errors.New("quote not found")

// LoadFunc reads the persisted collection. A missing collection is not an
// error and yields an empty slice.
type LoadFunc func(ctx context.Context) ([]quote.Quote, error)

// PersistFunc writes the whole collection.
type PersistFunc func(ctx context.Context, quotes []quote.Quote) error

type Option func(*Book)

func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(b *Book) { b.newID = newID }
}

// Book is the authoritative in-memory collection. Each operation runs to
// completion under mu; the persisted copy is written before the new state is
// published.
type Book struct {
	mu      sync.Mutex
	quotes  []quote.Quote
	persist PersistFunc
	now     func() time.Time
	newID   func() string
}

type ImportResult struct {
	Rows    int `json:"rows"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

func New(quotes []quote.Quote, persist PersistFunc, opts ...Option) *Book {
	b := &Book{
		quotes:  quotes,
		persist: persist,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(b)
	}
	if b.persist == nil {
		b.persist = func(context.Context, []quote.Quote) error { return nil }
	}
	return b
}

// Open loads the collection once and returns a Book writing through persist.
func Open(ctx context.Context, load LoadFunc, persist PersistFunc, opts ...Option) (*Book, error) {
	quotes, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading quotes: %w", err)
	}
	return New(quotes, persist, opts...), nil
}

func (b *Book) List() []quote.Quote {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]quote.Quote, len(b.quotes))
	copy(out, b.quotes)
	return out
}

func (b *Book) Get(id string) (quote.Quote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		return quote.Quote{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return b.quotes[i], nil
}

// Save creates q when it has no id (prepending it, newest first) or replaces
// the stored quote with the same id in place.
func (b *Book) Save(ctx context.Context, q quote.Quote) (quote.Quote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	stamp := quote.Stamp(b.now())
	q = q.Normalize()

	var next []quote.Quote
	if q.ID == "" {
		q.ID = b.newID()
		q.CreatedAt = stamp
		q.UpdatedAt = stamp
		next = make([]quote.Quote, 0, len(b.quotes)+1)
		next = append(next, q)
		next = append(next, b.quotes...)
	} else {
		i := b.indexOf(q.ID)
		if i < 0 {
			return quote.Quote{}, fmt.Errorf("%w: %s", ErrNotFound, q.ID)
		}
		q.CreatedAt = b.quotes[i].CreatedAt
		q.UpdatedAt = stamp
		next = append([]quote.Quote(nil), b.quotes...)
		next[i] = q
	}

	if err := b.commit(ctx, next); err != nil {
		return quote.Quote{}, err
	}
	return q, nil
}

// Import assembles rows into quotes and reconciles them into the collection.
// An empty batch changes nothing and writes nothing.
func (b *Book) Import(ctx context.Context, rows []importer.Row) (ImportResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	res := ImportResult{Rows: len(rows), Total: len(b.quotes)}
	if len(rows) == 0 {
		return res, nil
	}

	a := importer.Assembler{Now: b.now, NewID: b.newID}
	batch := a.AssembleAll(rows)

	seen := make(map[string]bool, len(b.quotes)+len(batch))
	for _, q := range b.quotes {
		seen[q.ID] = true
	}
	for _, q := range batch {
		if seen[q.ID] {
			res.Updated++
			continue
		}
		seen[q.ID] = true
		res.Created++
	}

	next := importer.Reconcile(b.quotes, batch)
	if err := b.commit(ctx, next); err != nil {
		return ImportResult{}, err
	}
	res.Total = len(next)
	return res, nil
}

func (b *Book) RequestApproval(ctx context.Context, id, approver, note string) (quote.Quote, error) {
	return b.mutate(ctx, id, func(q *quote.Quote, now time.Time) error {
		q.RequestApproval(approver, note, now)
		return nil
	})
}

func (b *Book) DecideApproval(ctx context.Context, id string, approved bool, note string) (quote.Quote, error) {
	return b.mutate(ctx, id, func(q *quote.Quote, now time.Time) error {
		return q.DecideApproval(approved, note, now)
	})
}

func (b *Book) mutate(ctx context.Context, id string, fn func(*quote.Quote, time.Time) error) (quote.Quote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return quote.Quote{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	now := b.now()
	q := b.quotes[i]
	if err := fn(&q, now); err != nil {
		return quote.Quote{}, err
	}
	q.UpdatedAt = quote.Stamp(now)

	next := append([]quote.Quote(nil), b.quotes...)
	next[i] = q
	if err := b.commit(ctx, next); err != nil {
		return quote.Quote{}, err
	}
	return q, nil
}

func (b *Book) commit(ctx context.Context, next []quote.Quote) error {
	if err := b.persist(ctx, next); err != nil {
		return fmt.Errorf("persisting quotes: %w", err)
	}
	b.quotes = next
	return nil
}

func (b *Book) indexOf(id string) int {
	for i, q := range b.quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}
