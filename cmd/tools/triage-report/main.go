// cmd/tools/triage-report/main.go
//
// Runs a triage pass over a ticket dataset and prints the ranked result as
// a plain-text report, for checking datasets and scoring behavior without
// starting the web server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"ticket-triage/internal/common/logger"
	"ticket-triage/internal/models"
	"ticket-triage/internal/triage/dataset"
	"ticket-triage/internal/triage/presenter"
	"ticket-triage/internal/triage/scorer"
)

func main() {
	datasetPath := flag.String("dataset", "", "Path to a JSON ticket dataset (default: built-in sample set)")
	asJSON := flag.Bool("json", false, "Emit the result as JSON instead of text")
	flag.Parse()

	log := logger.NewNoOpLogger()

	var tickets []models.Ticket
	var err error
	if *datasetPath != "" {
		tickets, err = dataset.LoadFromFile(*datasetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		tickets = dataset.Default()
	}

	pres := presenter.New(scorer.New(log), tickets, log)
	result, err := pres.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(result)
}

func printReport(result *presenter.Result) {
	for i, t := range result.Tickets {
		fmt.Printf("#%d  Ticket %d: %s\n", i+1, t.ID, t.Subject)
		fmt.Printf("    Priority: %s (score %d)  Sentiment: %s  Action: %s\n",
			t.Priority, t.PriorityScore, t.Sentiment, t.ActionType)
		if len(t.Categories) > 0 {
			fmt.Printf("    Categories:")
			for _, c := range t.Categories {
				fmt.Printf(" [%s]", c)
			}
			fmt.Println()
		}
		fmt.Printf("    Urgency %d/10 -> %d pts, Financial %d/10 -> %d pts, Blocking %d/10 -> %d pts\n",
			t.Urgency, t.Urgency*3,
			t.FinancialImpact, t.FinancialImpact*3,
			t.Blocking, t.Blocking*2)
		fmt.Println()
	}

	s := result.Summary
	fmt.Printf("Summary: %d urgent, %d critical, %d high, %d normal/low (%d tickets)\n",
		s.Urgent, s.Critical, s.High, s.NormalAndLow(), s.Total())
}
