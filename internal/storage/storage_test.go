package storage

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"fincontrol/internal/config"
	"fincontrol/internal/logger"
	"fincontrol/internal/metrics"
	"fincontrol/internal/models"
	"fincontrol/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, []byte) error   { return f.err }
func (f failingStore) Name() string                                { return "failing" }
func (f failingStore) Close() error                                { return nil }

var _ KeyValueStore = failingStore{}

// recordingStore remembers the order of writes.
type recordingStore struct {
	*MemoryStore
	mu     sync.Mutex
	writes []string
}

func (r *recordingStore) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.writes = append(r.writes, string(value))
	r.mu.Unlock()
	return r.MemoryStore.Set(ctx, key, value)
}

// slowStore delays every write.
type slowStore struct {
	*MemoryStore
	delay time.Duration
}

func (s *slowStore) Set(ctx context.Context, key string, value []byte) error {
	time.Sleep(s.delay)
	return s.MemoryStore.Set(ctx, key, value)
}

// blockingStore holds every write until release is closed.
type blockingStore struct {
	*MemoryStore
	started chan struct{}
	release chan struct{}
}

func (b *blockingStore) Set(ctx context.Context, key string, value []byte) error {
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-b.release
	return b.MemoryStore.Set(ctx, key, value)
}

type supersededRecorder struct {
	metrics.NoOp
	mu         sync.Mutex
	superseded int
}

func (r *supersededRecorder) RecordPersistSuperseded(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.superseded++
}

func (r *supersededRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.superseded
}

func testBackends(t *testing.T) map[string]KeyValueStore {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	return map[string]KeyValueStore{
		"memory": NewMemoryStore(),
		"gorm":   NewGormStore(db),
	}
}

func TestKeyValueStores(t *testing.T) {
	ctx := context.Background()
	for name, store := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, store.Set(ctx, "k", []byte(`[1]`)))
			got, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `[1]`, string(got))

			require.NoError(t, store.Set(ctx, "k", []byte(`[1,2]`)))
			got, err = store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))
		})
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	cfg := DefaultRedisConfig()
	cfg.Addr = addr
	cfg.KeyPrefix = "fincontrol-test:"
	store, err := NewRedisStore(cfg)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, GoalsKey, []byte(`[]`)))
	got, err := store.Get(ctx, GoalsKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	_, err = store.Get(ctx, "never-written")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewStore(t *testing.T) {
	t.Run("memory_default", func(t *testing.T) {
		store, err := NewStore(&config.Config{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "memory", store.Name())
	})

	t.Run("sql_driver_needs_db", func(t *testing.T) {
		_, err := NewStore(&config.Config{StorageDriver: config.DriverSQLite}, nil)
		assert.Error(t, err)
	})

	t.Run("sqlite", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store, err := NewStore(&config.Config{StorageDriver: config.DriverSQLite}, db)
		require.NoError(t, err)
		assert.Equal(t, "gorm:sqlite", store.Name())
	})

	t.Run("unknown_driver", func(t *testing.T) {
		_, err := NewStore(&config.Config{StorageDriver: "mongo"}, nil)
		assert.Error(t, err)
	})
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("absent_keys_load_empty", func(t *testing.T) {
		repo := NewRepository(NewMemoryStore())
		assert.NotNil(t, repo.LoadTransactions(ctx))
		assert.Empty(t, repo.LoadTransactions(ctx))
		assert.NotNil(t, repo.LoadGoals(ctx))
		assert.Empty(t, repo.LoadGoals(ctx))
	})

	t.Run("corrupt_json_loads_empty", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, TransactionsKey, []byte(`[{"id":"a"},`)))
		require.NoError(t, store.Set(ctx, GoalsKey, []byte(`{"not":"an array"}`)))

		repo := NewRepository(store)
		assert.Empty(t, repo.LoadTransactions(ctx))
		assert.Empty(t, repo.LoadGoals(ctx))
	})

	t.Run("null_loads_empty", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, GoalsKey, []byte(`null`)))
		goals := NewRepository(store).LoadGoals(ctx)
		assert.NotNil(t, goals)
		assert.Empty(t, goals)
	})

	t.Run("backend_error_loads_empty", func(t *testing.T) {
		repo := NewRepository(failingStore{err: errors.New("connection refused")})
		assert.Empty(t, repo.LoadTransactions(ctx))
		assert.Empty(t, repo.LoadGoals(ctx))
	})

	t.Run("save_then_load", func(t *testing.T) {
		for name, store := range testBackends(t) {
			t.Run(name, func(t *testing.T) {
				repo := NewRepository(store)
				txs := []models.Transaction{
					testutil.NewTransaction(models.TransactionTypeIncome, 5000),
					testutil.NewInvestment(300, "g1"),
				}
				goals := []models.Goal{testutil.NewGoal(1000, 200)}

				require.NoError(t, repo.SaveTransactions(ctx, txs))
				require.NoError(t, repo.SaveGoals(ctx, goals))
				assert.Equal(t, txs, repo.LoadTransactions(ctx))
				assert.Equal(t, goals, repo.LoadGoals(ctx))
			})
		}
	})

	t.Run("reads_camel_case_field_names", func(t *testing.T) {
		store := NewMemoryStore()
		raw := `[{"id":"1715000000000","description":"Salário","amount":5000,"date":"2024-05-01","type":"INCOME","category":"Fonte de Renda"},` +
			`{"id":"1715000000001","description":"Tesouro","amount":300,"date":"2024-05-02","type":"INVESTMENT","category":"Investimentos/Poupança","goalId":"g1"}]`
		require.NoError(t, store.Set(ctx, TransactionsKey, []byte(raw)))

		txs := NewRepository(store).LoadTransactions(ctx)
		require.Len(t, txs, 2)
		assert.Equal(t, models.CategoryIncomeSource, txs[0].Category)
		assert.Equal(t, "g1", txs[1].GoalID)
	})

	t.Run("save_nil_writes_empty_array", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, NewRepository(store).SaveGoals(ctx, nil))
		raw, err := store.Get(ctx, GoalsKey)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})
}

func TestWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("drains_on_close", func(t *testing.T) {
		store := &recordingStore{MemoryStore: NewMemoryStore()}
		repo := NewRepository(store)
		w := NewWriter(repo, WriterConfig{}, nil)

		goals := []models.Goal{}
		for i := 0; i < 5; i++ {
			goals = append(goals, testutil.NewGoal(100, float64(i)))
			require.NoError(t, w.SaveGoals(goals))
		}
		require.NoError(t, w.Close(ctx))

		assert.NotEmpty(t, store.writes)
		assert.LessOrEqual(t, len(store.writes), 5)
		assert.Equal(t, goals, repo.LoadGoals(ctx))
	})

	t.Run("slow_backend_keeps_latest_snapshot", func(t *testing.T) {
		store := &slowStore{MemoryStore: NewMemoryStore(), delay: 20 * time.Millisecond}
		repo := NewRepository(store)
		w := NewWriter(repo, WriterConfig{}, nil)

		txs := []models.Transaction{}
		goals := []models.Goal{}
		for i := 0; i < 6; i++ {
			txs = append(txs, testutil.NewTransaction(models.TransactionTypeIncome, float64(i+1)))
			goals = append(goals, testutil.NewGoal(100, float64(i)))
			require.NoError(t, w.SaveTransactions(txs))
			require.NoError(t, w.SaveGoals(goals))
		}
		require.NoError(t, w.Close(ctx))

		assert.Len(t, repo.LoadTransactions(ctx), 6)
		assert.Equal(t, txs, repo.LoadTransactions(ctx))
		assert.Equal(t, goals, repo.LoadGoals(ctx))
	})

	t.Run("counts_superseded_snapshots", func(t *testing.T) {
		release := make(chan struct{})
		store := &blockingStore{MemoryStore: NewMemoryStore(), started: make(chan struct{}, 1), release: release}
		recorder := &supersededRecorder{}
		w := NewWriter(NewRepository(store), WriterConfig{}, recorder)

		require.NoError(t, w.SaveGoals([]models.Goal{testutil.NewGoal(1, 0)}))
		<-store.started
		for i := 0; i < 3; i++ {
			require.NoError(t, w.SaveGoals([]models.Goal{testutil.NewGoal(1, float64(i))}))
		}
		close(release)
		require.NoError(t, w.Close(ctx))

		assert.Equal(t, 2, recorder.count())
		assert.InDelta(t, 2, NewRepository(store.MemoryStore).LoadGoals(ctx)[0].CurrentAmount, 1e-9)
	})

	t.Run("snapshot_is_isolated_from_later_mutation", func(t *testing.T) {
		repo := NewRepository(NewMemoryStore())
		w := NewWriter(repo, WriterConfig{}, nil)

		txs := []models.Transaction{testutil.NewTransaction(models.TransactionTypeIncome, 10)}
		require.NoError(t, w.SaveTransactions(txs))
		txs[0].Amount = 99
		require.NoError(t, w.Close(ctx))

		assert.InDelta(t, 10, repo.LoadTransactions(ctx)[0].Amount, 1e-9)
	})

	t.Run("failed_write_is_swallowed", func(t *testing.T) {
		w := NewWriter(NewRepository(failingStore{err: errors.New("disk full")}), WriterConfig{}, nil)
		assert.NoError(t, w.SaveGoals([]models.Goal{testutil.NewGoal(1, 0)}))
		assert.NoError(t, w.Close(ctx))
	})

	t.Run("rejects_after_close", func(t *testing.T) {
		w := NewWriter(NewRepository(NewMemoryStore()), WriterConfig{}, nil)
		require.NoError(t, w.Close(ctx))
		assert.ErrorIs(t, w.SaveGoals(nil), ErrWriterClosed)
		assert.NoError(t, w.Close(ctx))
	})
}
