// Package scorer implements the ticket scoring rules: keyword-driven
// urgency, financial-impact, and blocking subscores, sentiment detection,
// the weighted priority score, tier classification, category tagging, and
// action-type selection.
package scorer

import (
	"strings"

	"ticket-triage/internal/common/logger"
	"ticket-triage/internal/models"
)

// Scorer annotates tickets. Scoring is pure and total: any ticket text,
// including empty strings, produces a valid result.
type Scorer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Scorer {
	return &Scorer{
		logger: log.WithFields(map[string]interface{}{"component": "scorer"}),
	}
}

// Score computes the full annotation for one ticket. All keyword matching
// is case-insensitive substring matching (not word-boundary matching)
// against the lowercased "subject body" concatenation, and every rule
// ladder is first-match-wins in a fixed order.
func (s *Scorer) Score(ticket models.Ticket) models.AnnotatedTicket {
	text := ticket.Text()

	urgency := s.scoreUrgency(text)
	financial := s.scoreFinancialImpact(text)
	blocking := s.scoreBlocking(text)
	sentiment := s.detectSentiment(text)

	score := urgency*3 + financial*3 + blocking*2 + sentiment.Value()

	priority := s.classifyPriority(score)
	categories := s.detectCategories(text)
	action := s.determineAction(priority, categories)

	s.logger.Debug("ticket scored", map[string]interface{}{
		"ticketId":        ticket.ID,
		"urgency":         urgency,
		"financialImpact": financial,
		"blocking":        blocking,
		"sentiment":       sentiment,
		"score":           score,
		"priority":        priority,
		"actionType":      action,
	})

	return models.AnnotatedTicket{
		Ticket:          ticket,
		Priority:        priority,
		PriorityScore:   score,
		Sentiment:       sentiment,
		Categories:      categories,
		ActionType:      action,
		Urgency:         urgency,
		FinancialImpact: financial,
		Blocking:        blocking,
	}
}

// scoreUrgency rates how time-pressed the sender is, 0-10. The deadline
// rule matches the bare substring "by " (trailing space, no word boundary),
// so text like "by 'Vintage Year'" counts as a deadline.
func (s *Scorer) scoreUrgency(text string) int {
	switch {
	case containsAny(text, "today", "5 pm", "by "):
		return 10
	case containsAny(text, "missing", "where is", "??"):
		return 9
	case containsAny(text, "error", "500"):
		return 7
	case containsAny(text, "login", "can't", "trying to"):
		return 7
	case containsAny(text, "feature", "would be great"):
		return 1
	default:
		return 3
	}
}

// scoreFinancialImpact rates money exposure, 0-10. A distribution reported
// missing outranks any other financial signal.
func (s *Scorer) scoreFinancialImpact(text string) int {
	switch {
	case strings.Contains(text, "distribution") && containsAny(text, "missing", "where is"):
		return 10
	case containsAny(text, "distribution", "bank", "account"):
		return 8
	case containsAny(text, "k-1", "tax"):
		return 7
	case containsAny(text, "login", "access"):
		return 3
	default:
		return 0
	}
}

// scoreBlocking rates whether the sender is locked out of the product, 0-10.
func (s *Scorer) scoreBlocking(text string) int {
	switch {
	case strings.Contains(text, "can't") || strings.Contains(text, "trying to log in"):
		return 10
	case containsAny(text, "error", "500"):
		return 7
	case containsAny(text, "update", "please"):
		return 3
	default:
		return 0
	}
}

// detectSentiment picks the tone label. First match wins, not magnitude: a
// ticket carrying both an escalation trigger and a positive trigger is
// classified Very Negative.
func (s *Scorer) detectSentiment(text string) models.Sentiment {
	switch {
	case containsAny(text, "unacceptable", "??", "angry"):
		return models.SentimentVeryNegative
	case containsAny(text, "need this", "checked spam"):
		return models.SentimentNegative
	case containsAny(text, "great", "just a thought"):
		return models.SentimentPositive
	default:
		return models.SentimentNeutral
	}
}

// classifyPriority maps the weighted score onto a tier. Thresholds are
// evaluated high to low; each band is inclusive on its lower bound.
func (s *Scorer) classifyPriority(score int) models.Priority {
	switch {
	case score >= 50:
		return models.PriorityUrgent
	case score >= 45:
		return models.PriorityCritical
	case score >= 35:
		return models.PriorityHigh
	case score >= 20:
		return models.PriorityNormal
	default:
		return models.PriorityLow
	}
}

// detectCategories evaluates every category rule independently and appends
// tags in detection order. Zero or many tags are possible; no tag appears
// twice.
func (s *Scorer) detectCategories(text string) []models.Category {
	categories := []models.Category{}
	if containsAny(text, "login", "password", "access") {
		categories = append(categories, models.CategoryAuthentication)
	}
	if containsAny(text, "k-1", "tax") {
		categories = append(categories, models.CategoryTaxDocuments)
	}
	if containsAny(text, "bank", "account") {
		categories = append(categories, models.CategoryBanking)
	}
	if strings.Contains(text, "distribution") {
		categories = append(categories, models.CategoryDistributions)
	}
	if containsAny(text, "error", "500") {
		categories = append(categories, models.CategoryTechnicalIssue)
	}
	if containsAny(text, "feature", "would be great") {
		categories = append(categories, models.CategoryFeatureRequest)
	}
	if containsAny(text, "export", "report") {
		categories = append(categories, models.CategoryReporting)
	}
	if containsAny(text, "unacceptable", "??") {
		categories = append(categories, models.CategoryEscalation)
	}
	return categories
}

// determineAction picks the single handling path by the first matching rule.
func (s *Scorer) determineAction(priority models.Priority, categories []models.Category) models.ActionType {
	hasCategory := func(c models.Category) bool {
		for _, cat := range categories {
			if cat == c {
				return true
			}
		}
		return false
	}

	switch {
	case priority == models.PriorityUrgent || priority == models.PriorityCritical:
		return models.ActionImmediateResponse
	case hasCategory(models.CategoryTechnicalIssue):
		return models.ActionEngineeringInvestigation
	case hasCategory(models.CategoryFeatureRequest):
		return models.ActionProductBacklog
	case hasCategory(models.CategoryBanking) || hasCategory(models.CategoryDistributions):
		return models.ActionAccountManagement
	default:
		return models.ActionStandardSupport
	}
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
