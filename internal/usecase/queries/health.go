package queries

import (
	"sort"
	"time"

	"tutor-booking/internal/pkg/clock"
	"tutor-booking/internal/usecase/shared"
)

//go:generate mockgen -source=health.go -destination=../../../tests/mock/queries/health.go -package=queriesmock

type HealthReport struct {
	Status        string
	Timestamp     time.Time
	Collaborators []shared.CollaboratorStatus
}

type HealthQueries interface {
	Check() HealthReport
}

type healthQueriesImpl struct {
	probes []shared.Probe
	clock  clock.Clock
}

func NewHealthQueries(probes []shared.Probe, clk clock.Clock) HealthQueries {
	return &healthQueriesImpl{probes: probes, clock: clk}
}

// Check reports "degraded" when any collaborator lacks configuration.
func (q *healthQueriesImpl) Check() HealthReport {
	report := HealthReport{Status: "ok", Timestamp: q.clock.Now()}
	for _, p := range q.probes {
		st := p.Status()
		if !st.Configured {
			report.Status = "degraded"
		}
		report.Collaborators = append(report.Collaborators, st)
	}
	sort.Slice(report.Collaborators, func(i, j int) bool {
		return report.Collaborators[i].Name < report.Collaborators[j].Name
	})
	return report
}
