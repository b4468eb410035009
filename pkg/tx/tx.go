package tx

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"

	"github.com/yodsaphonh/api-test-delivery/internal/repository"
	retrierconfig "github.com/yodsaphonh/api-test-delivery/pkg/retrier"
	"github.com/yodsaphonh/api-test-delivery/pkg/retrier/backoff_adapter"
)

const (
	retryInitialInterval = 10 * time.Millisecond
	retryMaxInterval     = 500 * time.Millisecond
	retryMaxElapsedTime  = 5 * time.Second
	retryRandomization   = 0.5
	retryMultiplier      = 2
)

type txRunner interface {
	DoWithSettings(ctx context.Context, s trm.Settings, fn func(ctx context.Context) error) error
}

// Manager wraps the transaction manager so services only depend on Do.
type Manager struct {
	internal txRunner
	retrier  retrierconfig.Retrier
}

func New(db pgxv5.Transactional) *Manager {
	return newManager(manager.Must(pgxv5.NewDefaultFactory(db)))
}

func newManager(runner txRunner) *Manager {
	return &Manager{
		internal: runner,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: retryInitialInterval,
			MaxInterval:     retryMaxInterval,
			MaxElapsedTime:  retryMaxElapsedTime,
			Randomization:   retryRandomization,
			Multiplier:      retryMultiplier,
			ShouldRetry:     repository.IsSerializationFailure,
		}),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

type hooksKey struct{}

type txHooks struct {
	fns []func()
}

// OnCommit schedules fn to run after the surrounding transaction commits.
// Outside a transaction fn runs immediately. Hooks registered during an
// attempt that aborts never run.
func OnCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey{}).(*txHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn()
}

// Do runs fn inside a serializable transaction. Every multi-record state
// transition and counter increment goes through here, so concurrent writers
// to the same rows conflict instead of interleaving. Serialization failures
// restart the whole transaction with backoff; fn must therefore be safe to
// re-execute. Exhausted retries surface the last error to the caller.
//
// A Do inside an open transaction joins it and runs fn directly. Only the
// outermost Do owns the retry loop: a serialization failure aborts the whole
// transaction, so an inner retry would re-run its piece inside an already
// aborted transaction and turn a retryable conflict into a permanent error.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(hooksKey{}) != nil {
		return fn(ctx)
	}

	hooks := &txHooks{}
	txCtx := context.WithValue(ctx, hooksKey{}, hooks)

	err := m.retrier.ExecuteWithContext(txCtx, func(ctx context.Context) error {
		hooks.fns = hooks.fns[:0]
		return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
	})
	if err != nil {
		return err
	}

	for _, hook := range hooks.fns {
		hook()
	}
	return nil
}
