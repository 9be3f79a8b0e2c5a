package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/logger"
	"fincontrol/internal/models"
)

// backupService exports and restores the whole application state.
type backupService struct {
	store *Store
	now   func() time.Time
}

// NewBackupService creates a new BackupServicer. now defaults to time.Now.
func NewBackupService(store *Store, now func() time.Time) BackupServicer {
	if now == nil {
		now = time.Now
	}
	return &backupService{store: store, now: now}
}

// Export snapshots both collections.
func (s *backupService) Export() (*models.Backup, error) {
	return &models.Backup{
		Transactions: s.store.Transactions(),
		Goals:        s.store.Goals(),
		ExportedAt:   s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Version:      models.BackupVersion,
	}, nil
}

// Import replaces each collection whose key is present as a JSON array.
// Nothing changes unless the whole document decodes. Goal balances are
// restored as stored, without re-running goal sync.
func (s *backupService) Import(r io.Reader) (*ImportResult, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(
			apperrors.WithMessage(apperrors.ErrInvalidBackup, "Arquivo de backup inválido: o conteúdo não é um JSON válido."),
			err,
		)
	}

	var txs *[]models.Transaction
	if raw, ok := doc["transactions"]; ok && isJSONArray(raw) {
		decoded := []models.Transaction{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, invalidCollection("transactions", err)
		}
		txs = &decoded
	}

	var goals *[]models.Goal
	if raw, ok := doc["goals"]; ok && isJSONArray(raw) {
		decoded := []models.Goal{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, invalidCollection("goals", err)
		}
		goals = &decoded
	}

	if txs == nil && goals == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidBackup,
			"Arquivo de backup inválido: nenhuma lista de transações ou metas encontrada.")
	}

	s.store.ReplaceAll(txs, goals)

	result := &ImportResult{}
	if txs != nil {
		result.TransactionsRestored = true
		result.TransactionCount = len(*txs)
	}
	if goals != nil {
		result.GoalsRestored = true
		result.GoalCount = len(*goals)
	}

	logger.Get().Infow("Backup imported",
		"transactions", result.TransactionCount, "goals", result.GoalCount,
		"transactions_restored", result.TransactionsRestored, "goals_restored", result.GoalsRestored)
	return result, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func invalidCollection(key string, err error) error {
	return apperrors.Wrap(
		apperrors.WithMessage(apperrors.ErrInvalidBackup, fmt.Sprintf("Arquivo de backup inválido: a lista %q não pôde ser lida.", key)),
		err,
	)
}
