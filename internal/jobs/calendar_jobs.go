package jobs

import (
	"time"

	"toolrental-backend/internal/calendar"
	"toolrental-backend/internal/config"
	"toolrental-backend/internal/logger"
)

// JobRunner owns the scheduled maintenance jobs
type JobRunner struct {
	cfg      *config.Config
	calendar *calendar.Calendar
}

// NewJobRunner creates a job runner with the provided collaborators
func NewJobRunner(cfg *config.Config, cal *calendar.Calendar) *JobRunner {
	return &JobRunner{
		cfg:      cfg,
		calendar: cal,
	}
}

// Config returns the application configuration used by the jobs
func (j *JobRunner) Config() *config.Config {
	return j.cfg
}

// WarmHolidayCache precomputes the observed holidays for the current
// and the next year. Holiday data is immutable once computed, so
// warming is purely a latency optimization for checkout calls.
func (j *JobRunner) WarmHolidayCache() {
	currentYear := time.Now().UTC().Year()
	for _, year := range []int{currentYear, currentYear + 1} {
		holidays := j.calendar.HolidaysForYear(year)
		logger.Debug("Holiday cache warmed", "year", year, "holidays", len(holidays))
	}
	logger.Info("Holiday cache warm complete", "from_year", currentYear, "to_year", currentYear+1)
}
