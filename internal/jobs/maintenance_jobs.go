package jobs

import (
	"context"
	"time"

	"github.com/circlesapp/server/internal/logger"
)

// SweepOrphanedResources deletes rows whose club no longer exists. The
// club closure cascade runs step by step without a transaction, so a
// crash mid-cascade can leave posts, budgets, awards, applications or
// calendar entries behind. This sweep makes that window harmless.
func (jr *JobRunner) SweepOrphanedResources() {
	jr.runWithRecovery("SweepOrphanedResources", func() {
		ctx := context.Background()

		sweeps := []struct {
			name string
			fn   func(context.Context) (int64, error)
		}{
			{"posts", jr.store.PostRepository.DeleteOrphaned},
			{"budgets", jr.store.BudgetRepository.DeleteOrphaned},
			{"awards", jr.store.AwardRepository.DeleteOrphaned},
			{"applicants", jr.store.ApplicantRepository.DeleteOrphaned},
			{"calendar_entries", jr.store.CalendarRepository.DeleteOrphaned},
		}

		var total int64
		for _, sweep := range sweeps {
			n, err := sweep.fn(ctx)
			if err != nil {
				logger.Error("Failed to sweep orphaned rows", "table", sweep.name, "error", err)
				continue
			}
			if n > 0 {
				logger.Info("Swept orphaned rows", "table", sweep.name, "count", n)
			}
			total += n
		}
		logger.Info("Orphan sweep finished", "total", total)
	})
}

// PruneAlarms drops notification log entries older than the configured
// retention window.
func (jr *JobRunner) PruneAlarms() {
	jr.runWithRecovery("PruneAlarms", func() {
		ctx := context.Background()

		retention := time.Duration(jr.config.Scheduler.AlarmRetentionDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-retention)

		n, err := jr.store.AlarmRepository.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to prune alarms", "error", err)
			return
		}
		logger.Info("Pruned alarms", "count", n, "cutoff", cutoff.Format(time.RFC3339))
	})
}
