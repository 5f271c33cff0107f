package model

import "time"

type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
	PriorityUrgent TicketPriority = "urgent"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

type Ticket struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id"`
	Subject    string         `json:"subject"`
	Message    string         `json:"message"`
	Priority   TicketPriority `json:"priority"`
	Status     TicketStatus   `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type TicketPatch struct {
	Subject  *string         `json:"subject,omitempty"`
	Message  *string         `json:"message,omitempty"`
	Priority *TicketPriority `json:"priority,omitempty"`
	Status   *TicketStatus   `json:"status,omitempty"`
}
