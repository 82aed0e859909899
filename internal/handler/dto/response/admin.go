package response

import (
	"time"

	"tutor-booking/internal/usecase/queries"
	"tutor-booking/internal/usecase/reconcile"
	"tutor-booking/internal/usecase/settlement"
)

type LockResponse struct {
	Key        string    `json:"key"`
	AcquiredAt time.Time `json:"acquiredAt"`
	AgeSeconds int64     `json:"ageSeconds"`
}

func FromLocks(in []settlement.LockInfo) []LockResponse {
	out := make([]LockResponse, 0, len(in))
	for _, l := range in {
		out = append(out, LockResponse{Key: l.Key, AcquiredAt: l.AcquiredAt, AgeSeconds: int64(l.Age.Seconds())})
	}
	return out
}

type SnapshotResponse struct {
	EventID     string    `json:"eventId"`
	Calendar    string    `json:"calendar"`
	Attendees   []string  `json:"attendees"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func FromSnapshots(in []reconcile.Snapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(in))
	for _, s := range in {
		attendees := s.Attendees
		if attendees == nil {
			attendees = []string{}
		}
		out = append(out, SnapshotResponse{
			EventID:     s.EventID,
			Calendar:    s.Calendar,
			Attendees:   attendees,
			LastUpdated: s.LastUpdated,
		})
	}
	return out
}

type SweepResponse struct {
	Released []string `json:"released"`
}

type CollaboratorResponse struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

type HealthResponse struct {
	Status        string                 `json:"status"`
	Timestamp     time.Time              `json:"timestamp"`
	Collaborators []CollaboratorResponse `json:"collaborators"`
}

func FromHealthReport(r queries.HealthReport) HealthResponse {
	out := HealthResponse{
		Status:        r.Status,
		Timestamp:     r.Timestamp,
		Collaborators: make([]CollaboratorResponse, 0, len(r.Collaborators)),
	}
	for _, c := range r.Collaborators {
		out.Collaborators = append(out.Collaborators, CollaboratorResponse{Name: c.Name, Configured: c.Configured})
	}
	return out
}
