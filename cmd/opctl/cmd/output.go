package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	apiclient "github.com/orderpulse/orderpulse/internal/api/client"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRuleTable(rules []apiclient.Rule) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tMETRIC\tOPERATOR\tTHRESHOLD\tWINDOW\tACTIVE\n")
	for i := range rules {
		tw.writef("%s\t%s\t%s\t%s\t%ds\t%v\n",
			rules[i].ID,
			rules[i].Metric,
			rules[i].Operator,
			rules[i].Threshold,
			rules[i].WindowSeconds,
			rules[i].IsActive,
		)
	}
	return tw.finish()
}

func printRuleDetail(r *apiclient.Rule) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Metric:\t%s\n", r.Metric)
	tw.writef("Operator:\t%s\n", r.Operator)
	tw.writef("Threshold:\t%s\n", r.Threshold)
	tw.writef("Window:\t%ds\n", r.WindowSeconds)
	tw.writef("Active:\t%v\n", r.IsActive)
	tw.writef("Created:\t%s\n", r.CreatedAt)
	tw.writef("Updated:\t%s\n", r.UpdatedAt)
	return tw.finish()
}

func printOrderTable(orders []apiclient.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tCUSTOMER\tSTATUS\tAMOUNT\tCREATED\n")
	for i := range orders {
		tw.writef("%s\t%s\t%s\t%s %s\t%s\n",
			orders[i].ID,
			orders[i].CustomerID,
			orders[i].Status,
			orders[i].TotalAmount,
			orders[i].Currency,
			orders[i].CreatedAt,
		)
	}
	return tw.finish()
}

func printOrderDetail(o *apiclient.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Customer:\t%s\n", o.CustomerID)
	if o.ExternalID != "" {
		tw.writef("External ID:\t%s\n", o.ExternalID)
	}
	tw.writef("Status:\t%s\n", o.Status)
	tw.writef("Amount:\t%s %s\n", o.TotalAmount, o.Currency)
	tw.writef("Created:\t%s\n", o.CreatedAt)
	return tw.finish()
}

func printAOV(r *apiclient.AOVReport) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Window:\t%s\n", r.Window)
	tw.writef("Orders:\t%d\n", r.OrderCount)
	if r.Defined && r.AOV != nil {
		tw.writef("AOV:\t%s\n", *r.AOV)
	} else {
		tw.writef("AOV:\tundefined (no orders in window)\n")
	}
	return tw.finish()
}

func printRFMTable(r *apiclient.RFMReport) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CUSTOMER\tR\tF\tM\tTOTAL\n")
	for i := range r.Scores {
		s := &r.Scores[i]
		tw.writef("%s\t%d\t%d\t%d\t%d\n",
			s.CustomerID, s.Recency, s.Frequency, s.Monetary, s.Total)
	}
	if r.AverageTotal != nil {
		tw.writef("\nAverage total:\t%.2f\n", *r.AverageTotal)
	}
	return tw.finish()
}

func printCohortTable(r *apiclient.CohortReport) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("COHORT\tSIZE\tRETENTION\n")
	for i := range r.Cohorts {
		row := &r.Cohorts[i]
		rates := make([]string, len(row.Rates))
		for j, rate := range row.Rates {
			rates[j] = fmt.Sprintf("%.0f%%", rate*100)
		}
		tw.writef("%s\t%d\t%s\n", row.Month, row.Size, strings.Join(rates, " "))
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
