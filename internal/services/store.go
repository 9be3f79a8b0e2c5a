package services

import (
	"context"
	"sync"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/goalsync"
	"fincontrol/internal/logger"
	"fincontrol/internal/models"
	"fincontrol/internal/storage"
)

// Subscriber is notified with the new contents of a collection after every
// mutation that changed it. Notifications arrive in mutation order.
type Subscriber interface {
	OnTransactionsChanged(txs []models.Transaction)
	OnGoalsChanged(goals []models.Goal)
}

// Store holds the transaction and goal collections in memory.
//
// Every mutation builds new slices, so a slice handed out to a subscriber or
// caller is never modified afterwards.
type Store struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	goals        []models.Goal
	subscribers  []Subscriber
}

// NewStore creates a store seeded with the given collections.
func NewStore(txs []models.Transaction, goals []models.Goal) *Store {
	s := &Store{
		transactions: make([]models.Transaction, len(txs)),
		goals:        make([]models.Goal, len(goals)),
	}
	copy(s.transactions, txs)
	copy(s.goals, goals)
	return s
}

// LoadStore reads both collections from repo. Missing or unreadable data
// starts the store empty.
func LoadStore(ctx context.Context, repo *storage.Repository) *Store {
	txs := repo.LoadTransactions(ctx)
	goals := repo.LoadGoals(ctx)
	logger.Get().Infow("Loaded collections",
		"transactions", len(txs), "goals", len(goals), "backend", repo.Store().Name())
	return NewStore(txs, goals)
}

// Subscribe registers sub for change notifications.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) FindTransaction(id string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findTransactionLocked(id)
}

func (s *Store) FindGoal(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}

func (s *Store) findTransactionLocked(id string) (models.Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

func (s *Store) goalExistsLocked(id string) bool {
	for _, g := range s.goals {
		if g.ID == id {
			return true
		}
	}
	return false
}

// UpsertTransaction replaces the transaction with tx.ID, or appends tx when
// there is none, and syncs goal balances. prev describes the contribution
// the stored version made and is nil on create.
func (s *Store) UpsertTransaction(tx models.Transaction, prev *goalsync.Previous) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putTransaction(tx, prev)
}

// TransactionBuilder produces the new version of a stored transaction.
// goalExists reports whether a goal id is known and may be called while the
// store is locked.
type TransactionBuilder func(existing models.Transaction, goalExists func(id string) bool) (models.Transaction, error)

// UpdateTransaction replaces the transaction id with the result of build and
// moves its goal contribution, all under one lock. It fails with
// ErrTransactionNotFound when id is unknown and returns build's error
// unchanged; in both cases nothing is modified.
func (s *Store) UpdateTransaction(id string, build TransactionBuilder) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.findTransactionLocked(id)
	if !ok {
		return models.Transaction{}, apperrors.ErrTransactionNotFound
	}
	tx, err := build(existing, s.goalExistsLocked)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.ID = existing.ID

	var prev *goalsync.Previous
	if existing.IsInvestment() {
		prev = &goalsync.Previous{Amount: existing.Amount, GoalID: existing.GoalID}
	}
	s.putTransaction(tx, prev)
	return tx, nil
}

// putTransaction must be called with mu held.
func (s *Store) putTransaction(tx models.Transaction, prev *goalsync.Previous) {
	txs := make([]models.Transaction, 0, len(s.transactions)+1)
	replaced := false
	for _, t := range s.transactions {
		if t.ID == tx.ID {
			txs = append(txs, tx)
			replaced = true
			continue
		}
		txs = append(txs, t)
	}
	if !replaced {
		txs = append(txs, tx)
	}
	s.transactions = txs
	s.notifyTransactions()

	hadGoal := prev != nil && prev.GoalID != ""
	switch {
	case tx.IsInvestment() && (tx.GoalID != "" || hadGoal):
		s.goals = goalsync.Apply(s.goals, tx, tx.GoalID, prev)
		s.notifyGoals()
	case !tx.IsInvestment() && hadGoal:
		s.goals = goalsync.Retract(s.goals, models.Transaction{
			Type:   models.TransactionTypeInvestment,
			Amount: prev.Amount,
			GoalID: prev.GoalID,
		})
		s.notifyGoals()
	}
}

// DeleteTransaction removes the transaction and retracts its goal
// contribution. ok is false when no transaction has that id.
func (s *Store) DeleteTransaction(id string) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed models.Transaction
	found := false
	txs := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if t.ID == id && !found {
			removed = t
			found = true
			continue
		}
		txs = append(txs, t)
	}
	if !found {
		return models.Transaction{}, false
	}

	s.transactions = txs
	s.notifyTransactions()

	if removed.LinkedGoalID() != "" {
		s.goals = goalsync.Retract(s.goals, removed)
		s.notifyGoals()
	}
	return removed, true
}

// UpsertGoal replaces the goal with g.ID or appends g.
func (s *Store) UpsertGoal(g models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]models.Goal, 0, len(s.goals)+1)
	replaced := false
	for _, existing := range s.goals {
		if existing.ID == g.ID {
			goals = append(goals, g)
			replaced = true
			continue
		}
		goals = append(goals, existing)
	}
	if !replaced {
		goals = append(goals, g)
	}
	s.goals = goals
	s.notifyGoals()
}

// ReplaceGoal swaps the stored goal with g.ID for g. It reports false and
// changes nothing when that goal no longer exists.
func (s *Store) ReplaceGoal(g models.Goal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.goalExistsLocked(g.ID) {
		return false
	}
	goals := make([]models.Goal, len(s.goals))
	for i, existing := range s.goals {
		if existing.ID == g.ID {
			existing = g
		}
		goals[i] = existing
	}
	s.goals = goals
	s.notifyGoals()
	return true
}

// DeleteGoal removes a goal. Transactions linked to it keep their goalId.
func (s *Store) DeleteGoal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := make([]models.Goal, 0, len(s.goals))
	found := false
	for _, g := range s.goals {
		if g.ID == id && !found {
			found = true
			continue
		}
		goals = append(goals, g)
	}
	if !found {
		return false
	}
	s.goals = goals
	s.notifyGoals()
	return true
}

// ReplaceAll swaps whole collections. A nil argument leaves that collection
// as it is.
func (s *Store) ReplaceAll(txs *[]models.Transaction, goals *[]models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if txs != nil {
		s.transactions = make([]models.Transaction, len(*txs))
		copy(s.transactions, *txs)
		s.notifyTransactions()
	}
	if goals != nil {
		s.goals = make([]models.Goal, len(*goals))
		copy(s.goals, *goals)
		s.notifyGoals()
	}
}

// notify* must be called with mu held.
func (s *Store) notifyTransactions() {
	for _, sub := range s.subscribers {
		sub.OnTransactionsChanged(s.transactions)
	}
}

func (s *Store) notifyGoals() {
	for _, sub := range s.subscribers {
		sub.OnGoalsChanged(s.goals)
	}
}

// snapshotWriter is the part of storage.Writer the subscriber uses.
type snapshotWriter interface {
	SaveTransactions(txs []models.Transaction) error
	SaveGoals(goals []models.Goal) error
}

// PersistenceSubscriber forwards every change to the storage writer.
type PersistenceSubscriber struct {
	writer snapshotWriter
}

// NewPersistenceSubscriber creates a subscriber that saves through w.
func NewPersistenceSubscriber(w *storage.Writer) *PersistenceSubscriber {
	return &PersistenceSubscriber{writer: w}
}

func (p *PersistenceSubscriber) OnTransactionsChanged(txs []models.Transaction) {
	if err := p.writer.SaveTransactions(txs); err != nil {
		logger.Get().Errorw("Failed to queue transactions snapshot", "error", err)
	}
}

func (p *PersistenceSubscriber) OnGoalsChanged(goals []models.Goal) {
	if err := p.writer.SaveGoals(goals); err != nil {
		logger.Get().Errorw("Failed to queue goals snapshot", "error", err)
	}
}
