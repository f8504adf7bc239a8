package jobs

import (
	"github.com/circlesapp/server/internal/config"
	"github.com/circlesapp/server/internal/logger"
	"github.com/circlesapp/server/internal/repository/postgres"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	store  *postgres.Store
	config *config.Config
}

func NewJobRunner(store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{store: store, config: cfg}
}

// Config returns the loaded configuration, mainly for schedule lookup.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every maintenance job once (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SweepOrphanedResources()
	jr.PruneAlarms()
}
