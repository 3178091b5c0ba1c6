// Package entity defines the domain entities for navkit.
package entity

import "time"

// Visit represents a location the browsing context has navigated to.
type Visit struct {
	ID        int64     `json:"id"`
	URI       string    `json:"uri"`
	Count     int64     `json:"count"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVisit creates a visit record for a freshly dispatched URI.
func NewVisit(uri string) *Visit {
	now := time.Now()
	return &Visit{
		URI:       uri,
		Count:     1,
		LastSeen:  now,
		CreatedAt: now,
	}
}

// Record folds n further occurrences of the URI into the visit.
func (v *Visit) Record(n int64) {
	v.Count += n
	v.LastSeen = time.Now()
}

// VisitStats contains aggregated visit statistics.
type VisitStats struct {
	TotalURIs   int64 `json:"total_uris"`
	TotalVisits int64 `json:"total_visits"`
}
