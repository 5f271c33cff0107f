package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"streamvault_backend/internal/model"
)

// DashboardStats backs the console's overview page.
type DashboardStats struct {
	TotalCustomers      int64            `json:"total_customers"`
	SubscriptionsByPlan []PlanStat       `json:"subscriptions_by_plan"`
	StatusCounts        map[string]int64 `json:"status_counts"`
	MonthlyRevenue      int64            `json:"monthly_revenue"` // minor units, paid invoices last 30 days
	PendingAmount       int64            `json:"pending_amount"`
	OpenTickets         int64            `json:"open_tickets"`
	UrgentTickets       int64            `json:"urgent_tickets"`
}

type PlanStat struct {
	Plan  string `json:"plan"`
	Count int64  `json:"count"`
}

// GetDashboardStats recomputes everything from the current collections on
// each call; nothing here is cached.
func GetDashboardStats(c *fiber.Ctx) error {
	var stats DashboardStats
	stats.StatusCounts = make(map[string]int64)

	stats.TotalCustomers = int64(len(Store.Customers()))

	planCounts := make(map[string]int64)
	for _, sub := range Store.Subscriptions() {
		stats.StatusCounts[string(sub.Status)]++
		if sub.Status != model.StatusCancelled {
			planCounts[sub.PlanName]++
		}
	}
	for _, name := range []string{"Basic", "Mega", "Premium"} {
		if count, ok := planCounts[name]; ok {
			stats.SubscriptionsByPlan = append(stats.SubscriptionsByPlan, PlanStat{Plan: name, Count: count})
			delete(planCounts, name)
		}
	}
	for name, count := range planCounts {
		stats.SubscriptionsByPlan = append(stats.SubscriptionsByPlan, PlanStat{Plan: name, Count: count})
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	for _, inv := range Store.Invoices() {
		switch inv.Status {
		case model.InvoicePaid:
			if inv.UpdatedAt.After(cutoff) {
				stats.MonthlyRevenue += inv.Amount
			}
		case model.InvoicePending, model.InvoiceOverdue:
			stats.PendingAmount += inv.Amount
		}
	}

	for _, t := range Store.Tickets() {
		if t.Status != model.TicketResolved {
			stats.OpenTickets++
			if t.Priority == model.PriorityUrgent {
				stats.UrgentTickets++
			}
		}
	}

	return c.JSON(stats)
}
