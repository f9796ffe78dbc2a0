// Package reports computes the read-only aggregates behind the admin
// dashboard. Everything is a full scan over the listed rows at query time;
// fine at this data scale, revisit before the tables reach tens of
// thousands of rows.
package reports

import (
	"time"

	"studio-backoffice/internal/models"
)

type LeadStats struct {
	Total    int                       `json:"total"`
	ByStatus map[models.LeadStatus]int `json:"by_status"`
}

func Leads(leads []models.Lead) LeadStats {
	stats := LeadStats{ByStatus: map[models.LeadStatus]int{}}
	for _, l := range leads {
		stats.Total++
		stats.ByStatus[l.Status]++
	}
	return stats
}

type TaskStats struct {
	Total      int                       `json:"total"`
	Unassigned int                       `json:"unassigned"`
	ByStatus   map[models.TaskStatus]int `json:"by_status"`
}

func Tasks(tasks []models.Task) TaskStats {
	stats := TaskStats{ByStatus: map[models.TaskStatus]int{}}
	for _, t := range tasks {
		stats.Total++
		stats.ByStatus[t.Status]++
		if t.AssigneeID == nil {
			stats.Unassigned++
		}
	}
	return stats
}

type ProjectStats struct {
	Total        int                          `json:"total"`
	ByStatus     map[models.ProjectStatus]int `json:"by_status"`
	TotalValue   float64                      `json:"total_value"`
	TotalPaid    float64                      `json:"total_paid"`
	AveragePrice float64                      `json:"average_price"`
}

func Projects(projects []models.Project) ProjectStats {
	stats := ProjectStats{ByStatus: map[models.ProjectStatus]int{}}
	for _, p := range projects {
		stats.Total++
		stats.ByStatus[p.Status]++
		stats.TotalValue += p.TotalPrice
		stats.TotalPaid += p.AmountPaid
	}
	if stats.Total > 0 {
		stats.AveragePrice = stats.TotalValue / float64(stats.Total)
	}
	return stats
}

type InvoiceStats struct {
	Total        int                          `json:"total"`
	ByStatus     map[models.InvoiceStatus]int `json:"by_status"`
	TotalAmount  float64                      `json:"total_amount"`
	PaidAmount   float64                      `json:"paid_amount"`
	OverdueCount int                          `json:"overdue_count"`
}

func Invoices(invoices []models.Invoice, now time.Time) InvoiceStats {
	stats := InvoiceStats{ByStatus: map[models.InvoiceStatus]int{}}
	for _, inv := range invoices {
		stats.Total++
		stats.ByStatus[inv.Status]++
		stats.TotalAmount += inv.Amount
		if inv.Status == models.InvoicePaid {
			stats.PaidAmount += inv.Amount
		}
		if inv.Overdue(now) {
			stats.OverdueCount++
		}
	}
	return stats
}

type RecommendationStats struct {
	Total    int                      `json:"total"`
	Pending  int                      `json:"pending"`
	ByStatus map[models.RecStatus]int `json:"by_status"`
}

func Recommendations(recs []models.Recommendation) RecommendationStats {
	stats := RecommendationStats{ByStatus: map[models.RecStatus]int{}}
	for _, r := range recs {
		stats.Total++
		stats.ByStatus[r.Status]++
		if r.Status == models.RecPending {
			stats.Pending++
		}
	}
	return stats
}
