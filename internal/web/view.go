package web

import (
	"strings"
	"unicode/utf8"

	"ticket-triage/internal/models"
	"ticket-triage/internal/triage/presenter"
)

// pageData is everything the index template needs. Results is nil on the
// initial/reset view.
type pageData struct {
	HasResults bool
	Tickets    []ticketView
	Summary    summaryView
}

// ticketView is one ranked ticket with the weighted subscore breakdown
// precomputed for display.
type ticketView struct {
	QueuePosition   int
	ID              int
	Subject         string
	Body            string
	Priority        models.Priority
	PriorityScore   int
	Sentiment       models.Sentiment
	ActionType      models.ActionType
	Categories      []models.Category
	Urgency         int
	UrgencyPoints   int
	FinancialImpact int
	FinancialPoints int
	Blocking        int
	BlockingPoints  int
}

type summaryView struct {
	Urgent       int
	Critical     int
	High         int
	NormalAndLow int
}

func newPageData(result *presenter.Result, maxBodyLength int) *pageData {
	if result == nil {
		return &pageData{}
	}

	tickets := make([]ticketView, 0, len(result.Tickets))
	for i, t := range result.Tickets {
		tickets = append(tickets, ticketView{
			QueuePosition:   i + 1,
			ID:              t.ID,
			Subject:         t.Subject,
			Body:            truncate(t.Body, maxBodyLength),
			Priority:        t.Priority,
			PriorityScore:   t.PriorityScore,
			Sentiment:       t.Sentiment,
			ActionType:      t.ActionType,
			Categories:      t.Categories,
			Urgency:         t.Urgency,
			UrgencyPoints:   t.Urgency * 3,
			FinancialImpact: t.FinancialImpact,
			FinancialPoints: t.FinancialImpact * 3,
			Blocking:        t.Blocking,
			BlockingPoints:  t.Blocking * 2,
		})
	}

	return &pageData{
		HasResults: true,
		Tickets:    tickets,
		Summary: summaryView{
			Urgent:       result.Summary.Urgent,
			Critical:     result.Summary.Critical,
			High:         result.Summary.High,
			NormalAndLow: result.Summary.NormalAndLow(),
		},
	}
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "…"
}
