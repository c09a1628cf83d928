// Package presenter orchestrates a triage run: it validates and scores the
// configured ticket set, ranks the results, and computes the tier summary
// handed to the rendering surface.
package presenter

import (
	"context"
	"sort"
	"time"

	"ticket-triage/internal/common/errors"
	"ticket-triage/internal/common/logger"
	"ticket-triage/internal/common/metrics"
	"ticket-triage/internal/models"
	"ticket-triage/internal/triage/scorer"
)

// Result is the outcome of one triage run. It exists only for the duration
// of one rendering pass; nothing is persisted.
type Result struct {
	Tickets []models.AnnotatedTicket `json:"tickets"`
	Summary models.TierCounts        `json:"summary"`
}

// Presenter runs the scorer over an injected, read-only ticket list. Two
// concurrent runs are fully independent and produce identical output.
type Presenter struct {
	scorer  *scorer.Scorer
	tickets []models.Ticket
	logger  logger.Logger
}

func New(s *scorer.Scorer, tickets []models.Ticket, log logger.Logger) *Presenter {
	return &Presenter{
		scorer:  s,
		tickets: tickets,
		logger:  log.WithFields(map[string]interface{}{"component": "presenter"}),
	}
}

// Run validates and scores every ticket, sorts by descending priority score
// (stable: ties keep their input order), and tallies tickets per tier.
// A malformed ticket record aborts the run before any partial result
// escapes.
func (p *Presenter) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	for _, t := range p.tickets {
		if err := t.Validate(); err != nil {
			return nil, errors.NewTicketRecordInvalidError(err.Error())
		}
	}

	annotated := make([]models.AnnotatedTicket, 0, len(p.tickets))
	for _, t := range p.tickets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		annotated = append(annotated, p.scorer.Score(t))
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].PriorityScore > annotated[j].PriorityScore
	})

	summary := countTiers(annotated)

	metrics.TriageRunsTotal.Inc()
	metrics.TriageRunDuration.Observe(time.Since(start).Seconds())
	for _, t := range annotated {
		metrics.TicketsScored.WithLabelValues(string(t.Priority)).Inc()
	}

	p.logger.Info("triage run complete", map[string]interface{}{
		"tickets":  len(annotated),
		"urgent":   summary.Urgent,
		"critical": summary.Critical,
		"high":     summary.High,
		"normal":   summary.Normal,
		"low":      summary.Low,
	})

	return &Result{Tickets: annotated, Summary: summary}, nil
}

// Tickets returns the injected input list, in its original order.
func (p *Presenter) Tickets() []models.Ticket {
	return p.tickets
}

func countTiers(tickets []models.AnnotatedTicket) models.TierCounts {
	var counts models.TierCounts
	for _, t := range tickets {
		switch t.Priority {
		case models.PriorityUrgent:
			counts.Urgent++
		case models.PriorityCritical:
			counts.Critical++
		case models.PriorityHigh:
			counts.High++
		case models.PriorityNormal:
			counts.Normal++
		case models.PriorityLow:
			counts.Low++
		}
	}
	return counts
}
