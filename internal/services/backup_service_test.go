package services

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincontrol/internal/models"
	"fincontrol/internal/testutil"
)

func TestBackupExport(t *testing.T) {
	svc := NewBackupService(dashboardFixture(), fixedClock(2024, time.May, 31))

	backup, err := svc.Export()
	require.NoError(t, err)

	assert.Equal(t, "1.0", backup.Version)
	assert.Equal(t, "2024-05-31T12:00:00.000Z", backup.ExportedAt)
	assert.Len(t, backup.Transactions, 5)
	assert.Len(t, backup.Goals, 1)
}

func TestBackupRoundTrip(t *testing.T) {
	source := dashboardFixture()
	backup, err := NewBackupService(source, nil).Export()
	require.NoError(t, err)

	data, err := json.Marshal(backup)
	require.NoError(t, err)

	target := NewStore([]models.Transaction{testutil.NewTransaction(models.TransactionTypeIncome, 1)}, nil)
	result, err := NewBackupService(target, nil).Import(bytes.NewReader(data))
	require.NoError(t, err)

	assert.True(t, result.TransactionsRestored)
	assert.True(t, result.GoalsRestored)
	assert.Equal(t, source.Transactions(), target.Transactions())
	assert.Equal(t, source.Goals(), target.Goals())
}

func TestBackupImport(t *testing.T) {
	t.Run("partial_document_replaces_one_collection", func(t *testing.T) {
		store := dashboardFixture()
		svc := NewBackupService(store, nil)

		result, err := svc.Import(strings.NewReader(`{"goals":[{"id":"x","name":"Casa","targetAmount":100,"currentAmount":10,"deadline":"","notes":""}]}`))
		require.NoError(t, err)

		assert.False(t, result.TransactionsRestored)
		assert.True(t, result.GoalsRestored)
		assert.Equal(t, 1, result.GoalCount)
		assert.Len(t, store.Transactions(), 5, "transactions untouched")

		g, ok := store.FindGoal("x")
		require.True(t, ok)
		assert.InDelta(t, 10, g.CurrentAmount, 1e-9)
	})

	t.Run("non_array_key_is_ignored", func(t *testing.T) {
		store := dashboardFixture()
		result, err := NewBackupService(store, nil).Import(strings.NewReader(`{"transactions":"nope","goals":[]}`))
		require.NoError(t, err)

		assert.False(t, result.TransactionsRestored)
		assert.Len(t, store.Transactions(), 5)
		assert.Empty(t, store.Goals())
	})

	t.Run("invalid_json_leaves_state", func(t *testing.T) {
		store := dashboardFixture()
		_, err := NewBackupService(store, nil).Import(strings.NewReader(`{"transactions": [`))
		testutil.AssertAppError(t, err, "INVALID_BACKUP")
		assert.Len(t, store.Transactions(), 5)
	})

	t.Run("bad_element_leaves_state", func(t *testing.T) {
		store := dashboardFixture()
		_, err := NewBackupService(store, nil).Import(strings.NewReader(`{"goals":[],"transactions":[{"amount":"dez"}]}`))
		testutil.AssertAppError(t, err, "INVALID_BACKUP")
		assert.Len(t, store.Goals(), 1)
	})

	t.Run("no_collections", func(t *testing.T) {
		_, err := NewBackupService(NewStore(nil, nil), nil).Import(strings.NewReader(`{"version":"1.0"}`))
		testutil.AssertAppError(t, err, "INVALID_BACKUP")
	})

	t.Run("not_an_object", func(t *testing.T) {
		_, err := NewBackupService(NewStore(nil, nil), nil).Import(strings.NewReader(`[1,2]`))
		testutil.AssertAppError(t, err, "INVALID_BACKUP")
	})
}
