package snapshot

import "sysdash/internal/domain"

// SnapshotStore retains the previous cycle's snapshot for differencing.
type SnapshotStore struct {
	Store[*domain.Snapshot]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// ReportStore holds the last computed report for readers outside the
// refresh loop.
type ReportStore struct {
	Store[domain.Report]
}

func NewReportStore() *ReportStore {
	return &ReportStore{}
}
