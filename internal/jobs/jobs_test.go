package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  *memory.Store
	feed   *memory.ActivityFeed
	logs   *bytes.Buffer
	logger *slog.Logger
}

func newFixture(t *testing.T, stock ...int) fixture {
	t.Helper()
	logs := &bytes.Buffer{}
	f := fixture{
		store:  memory.NewStore(),
		feed:   memory.NewActivityFeed(20),
		logs:   logs,
		logger: slog.New(slog.NewJSONHandler(logs, nil)),
	}

	factory := memory.NewUnitOfWorkFactory(f.store, f.feed, slog.New(slog.DiscardHandler))
	ctx := context.Background()
	for i, quantity := range stock {
		id := "P100" + string(rune('1'+i))
		p, err := product.NewProduct(id, id, "Product "+id, "Electronics",
			kernel.MustParseLocation("A-12-3"), quantity, kernel.MustMoney("9.99"))
		require.NoError(t, err)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.ProductRepository().Add(ctx, p))
		require.NoError(t, uow.Commit(ctx))
	}
	return f
}

func (f fixture) lowStockJob(threshold int, schedule string) *jobs.LowStockAlertJob {
	handler := commands.NewDetectLowStockCommandHandler(f.store.ProductReader(), f.feed)
	return jobs.NewLowStockAlertJob(handler, threshold, schedule, f.logger)
}

func TestLowStockAlertJob_Run(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 45, 3)
	job := f.lowStockJob(10, "")
	cmd, err := commands.NewDetectLowStockCommand(10)
	require.NoError(t, err)

	job.Run(ctx, cmd)
	job.Run(ctx, cmd)

	recent, err := f.feed.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, product.EventLowStockDetected, recent[0].EventName())
	assert.Equal(t, "P1002", recent[0].AggregateID())
	assert.Equal(t, "critical", recent[0].Attributes()["severity"])

	all, err := f.feed.Recent(ctx, 20)
	require.NoError(t, err)
	var alerts int
	for _, e := range all {
		if e.EventName() == product.EventLowStockDetected {
			alerts++
		}
	}
	assert.Equal(t, 1, alerts, "unchanged severity is reported once")
	assert.Contains(t, f.logs.String(), "Low stock detected")
}

func TestLowStockAlertJob_Start(t *testing.T) {
	t.Run("should reject a non-positive threshold", func(t *testing.T) {
		job := newFixture(t).lowStockJob(0, "")

		require.Error(t, job.Start())
	})

	t.Run("should reject a malformed schedule", func(t *testing.T) {
		job := newFixture(t).lowStockJob(10, "every minute")

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		f := newFixture(t)
		job := f.lowStockJob(10, "")

		require.NoError(t, job.Start())
		job.Stop()
		assert.Contains(t, f.logs.String(), "Low stock alert job stopped")
	})
}

func TestBacklogReportJob_Run(t *testing.T) {
	f := newFixture(t)
	job := jobs.NewBacklogReportJob(queries.NewGetOrderMetricsQueryHandler(f.store.OrderReader()), "", f.logger)

	job.Run(context.Background())

	assert.Contains(t, f.logs.String(), `"msg":"Order backlog"`)
	assert.Contains(t, f.logs.String(), `"total":0`)
}

func TestJobManager(t *testing.T) {
	t.Run("should start and stop every job", func(t *testing.T) {
		f := newFixture(t)
		manager := jobs.NewJobManager(
			commands.NewDetectLowStockCommandHandler(f.store.ProductReader(), f.feed),
			queries.NewGetOrderMetricsQueryHandler(f.store.OrderReader()),
			jobs.Schedules{LowStockThreshold: 10},
			f.logger,
		)

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should stop started jobs when a later one fails", func(t *testing.T) {
		f := newFixture(t)
		manager := jobs.NewJobManager(
			commands.NewDetectLowStockCommandHandler(f.store.ProductReader(), f.feed),
			queries.NewGetOrderMetricsQueryHandler(f.store.OrderReader()),
			jobs.Schedules{LowStockThreshold: 10, Backlog: "not a schedule"},
			f.logger,
		)

		require.Error(t, manager.StartAll())
		assert.Contains(t, f.logs.String(), "Low stock alert job stopped")
	})
}
