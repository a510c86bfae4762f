// Package storage persists the quote collection as one JSON document in a
// key-value backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quote-crm/backend/internal/domain/quote"
)

// Key is the fixed key the collection lives under.
const Key = "quote_crm_data"

// ErrNotFound is returned by a KV when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// Store reads and writes the collection wholesale.
type Store struct {
	kv KV
}

func New(kv KV) *Store { return &Store{kv: kv} }

// Load returns the persisted collection, or an empty one when nothing has
// been stored yet.
func (s *Store) Load(ctx context.Context) ([]quote.Quote, error) {
	raw, err := s.kv.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return []quote.Quote{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

func (s *Store) Save(ctx context.Context, quotes []quote.Quote) error {
	raw, err := Encode(quotes)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, Key, raw)
}

func Encode(quotes []quote.Quote) (string, error) {
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	b, err := json.Marshal(quotes)
	if err != nil {
		return "", fmt.Errorf("encode quotes: %w", err)
	}
	return string(b), nil
}

func Decode(raw string) ([]quote.Quote, error) {
	if raw == "" {
		return []quote.Quote{}, nil
	}
	var quotes []quote.Quote
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	return quotes, nil
}
