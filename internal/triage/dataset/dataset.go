// Package dataset supplies the ticket list a triage run operates on: the
// built-in sample set, or a schema-validated JSON file configured at
// startup.
package dataset

import (
	"encoding/json"
	"os"

	"ticket-triage/internal/common/errors"
	"ticket-triage/internal/common/validation"
	"ticket-triage/internal/models"
)

// Default returns the built-in sample ticket set. Callers get a fresh slice
// each time; the records themselves are immutable by convention.
func Default() []models.Ticket {
	return []models.Ticket{
		{
			ID:      101,
			Subject: "Login help",
			Body:    "I'm trying to log in to see my K-1s but the password link isn't arriving. I checked spam. I need this for my accountant by 5 PM today.",
		},
		{
			ID:      102,
			Subject: "Bank Update",
			Body:    "Please update my distribution instructions. I want my dividends sent to my new Chase account ending in 4490. Attached is a voided check.",
		},
		{
			ID:      103,
			Subject: "Platform Error",
			Body:    "I'm getting a 500 error when I try to export the 'Q3 Performance Report' PDF. I've tried on Chrome and Safari. Screenshot attached.",
		},
		{
			ID:      104,
			Subject: "Angry / Missing Funds",
			Body:    "Where is my distribution?? It was supposed to hit yesterday. This is unacceptable. I've been an investor for 5 years and never seen such a delay.",
		},
		{
			ID:      105,
			Subject: "Feature Request",
			Body:    "It would be great if I could sort my investments by 'Vintage Year' on the dashboard. Just a thought!",
		},
	}
}

// LoadFromFile reads a JSON array of ticket records, validating every record
// against the ticket schema before any of them is accepted. Any invalid
// record fails the whole load.
func LoadFromFile(path string) ([]models.Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError(path, err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewDatasetLoadFailedError(path, err)
	}

	for _, record := range records {
		if result := validation.ValidateTicketRecord(record); !result.Valid {
			return nil, errors.NewDatasetSchemaInvalidError(validation.FormatErrors(result))
		}
	}

	var tickets []models.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, errors.NewDatasetLoadFailedError(path, err)
	}

	seen := make(map[int]bool, len(tickets))
	for _, t := range tickets {
		if seen[t.ID] {
			return nil, errors.NewDatasetSchemaInvalidError("duplicate ticket id")
		}
		seen[t.ID] = true
	}

	return tickets, nil
}
