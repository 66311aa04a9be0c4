package models

import "time"

// VisitStats is a snapshot of the landing-page visit counters.
type VisitStats struct {
	Views     int64      `json:"views"`
	FirstSeen *time.Time `json:"firstSeen,omitempty"`
	LastSeen  *time.Time `json:"lastSeen,omitempty"`
}
