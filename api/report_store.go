package api

import (
	"sync"
	"time"

	"weather-now/models"
)

// ReportStore holds the most recent successful report. Each search replaces
// it wholesale; there is no history.
type ReportStore struct {
	report  models.Report
	updated time.Time
	set     bool
	mutex   sync.RWMutex
}

// NewReportStore creates an empty store
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Update replaces the stored report
func (s *ReportStore) Update(report models.Report) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.report = report
	s.updated = time.Now()
	s.set = true
}

// Last returns the stored report and when it was stored
func (s *ReportStore) Last() (models.Report, time.Time, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.report, s.updated, s.set
}
