package models

import "time"

// RunRecord captures one pipeline run for reporting and archival.
type RunRecord struct {
	ID          string    `bson:"_id"`
	Provider    string    `bson:"provider"`
	StartedAt   time.Time `bson:"startedAt"`
	FinishedAt  time.Time `bson:"finishedAt"`
	Articles    int       `bson:"articles"`
	Fingerprint string    `bson:"fingerprint"`
	Written     bool      `bson:"written"`
	Committed   bool      `bson:"committed"`
}

// Duration returns the wall-clock duration of the run.
func (r *RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
