package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	require.NoError(t, db.Table("kv_entries").Count(&count).Error, "table kv_entries should exist after migration")
	assert.Zero(t, count)
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	require.NoError(t, first.Create(&models.KVEntry{Key: "k", Value: "[]"}).Error)

	var count int64
	second.Model(&models.KVEntry{}).Count(&count)
	assert.Zero(t, count, "second database should be empty")
}

func TestFixtures(t *testing.T) {
	a := testutil.NewTransaction(models.TransactionTypeIncome, 100)
	b := testutil.NewTransaction(models.TransactionTypeIncome, 100)
	assert.NotEqual(t, a.ID, b.ID, "fixtures should get unique IDs")
	assert.Equal(t, models.CategoryIncomeSource, a.Category)

	inv := testutil.NewInvestment(50, "g1")
	assert.Equal(t, "g1", inv.LinkedGoalID())

	goal := testutil.NewGoal(1000, 200)
	assert.InDelta(t, 20, goal.Progress(), 1e-9)
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrInvalidInput, "bad")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
