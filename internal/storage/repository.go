package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fincontrol/internal/logger"
	"fincontrol/internal/models"
)

// Storage keys for the two collections.
const (
	TransactionsKey = "financial_control_transactions"
	GoalsKey        = "financial_control_goals"
)

// Repository reads and writes the two collections on top of a KeyValueStore.
//
// Loads never fail: a missing key, a backend error or unparseable JSON all
// yield an empty collection, and anything other than a missing key is logged.
type Repository struct {
	store KeyValueStore
}

// NewRepository wraps store.
func NewRepository(store KeyValueStore) *Repository {
	return &Repository{store: store}
}

// Store returns the underlying backend.
func (r *Repository) Store() KeyValueStore {
	return r.store
}

func (r *Repository) LoadTransactions(ctx context.Context) []models.Transaction {
	txs := []models.Transaction{}
	r.load(ctx, TransactionsKey, &txs)
	if txs == nil {
		return []models.Transaction{}
	}
	return txs
}

func (r *Repository) LoadGoals(ctx context.Context) []models.Goal {
	goals := []models.Goal{}
	r.load(ctx, GoalsKey, &goals)
	if goals == nil {
		return []models.Goal{}
	}
	return goals
}

func (r *Repository) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	if txs == nil {
		txs = []models.Transaction{}
	}
	return r.save(ctx, TransactionsKey, txs)
}

func (r *Repository) SaveGoals(ctx context.Context, goals []models.Goal) error {
	if goals == nil {
		goals = []models.Goal{}
	}
	return r.save(ctx, GoalsKey, goals)
}

func (r *Repository) load(ctx context.Context, key string, dest interface{}) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Get().Errorw("Failed to load collection from storage",
				"key", key, "backend", r.store.Name(), "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Get().Errorw("Failed to parse stored collection",
			"key", key, "backend", r.store.Name(), "error", err)
		// A partially decoded value must not leak out.
		switch d := dest.(type) {
		case *[]models.Transaction:
			*d = []models.Transaction{}
		case *[]models.Goal:
			*d = []models.Goal{}
		}
	}
}

func (r *Repository) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.store.Set(ctx, key, data)
}
