package seed

import (
	"time"

	"streamvault_backend/internal/model"
	"streamvault_backend/internal/store"
)

// Demo returns the fixed demo dataset used as the hydration fallback. The
// console loads this instead of starting empty when no snapshot exists or
// the persisted blob is corrupted.
func Demo() store.Dataset {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	customers := []model.Customer{
		{
			ID:                 "cus_demo_001",
			Name:               "Maya Lindqvist",
			Email:              "maya.lindqvist@example.com",
			Phone:              "+46 70 123 4567",
			Plan:               "premium",
			SubscriptionStatus: model.StatusActive,
			TotalSpent:         35880,
			BillingAddress:     model.BillingAddress{City: "Stockholm", Country: "SE"},
			PaymentMethods: []model.PaymentMethod{
				{Type: "visa", IsDefault: true},
				{Type: "paypal"},
			},
			CreatedAt: base.AddDate(-1, 0, 0),
			LastLogin: base,
			UpdatedAt: base,
		},
		{
			ID:                 "cus_demo_002",
			Name:               "Derek Okafor",
			Email:              "derek.okafor@example.com",
			Plan:               "mega",
			SubscriptionStatus: model.StatusTrial,
			TotalSpent:         0,
			BillingAddress:     model.BillingAddress{City: "Austin", Country: "US"},
			PaymentMethods:     []model.PaymentMethod{{Type: "mastercard", IsDefault: true}},
			CreatedAt:          base.AddDate(0, 0, -10),
			LastLogin:          base.AddDate(0, 0, -1),
			UpdatedAt:          base.AddDate(0, 0, -1),
		},
		{
			ID:                 "cus_demo_003",
			Name:               "Aiko Tanaka",
			Email:              "aiko.tanaka@example.com",
			Plan:               "basic",
			SubscriptionStatus: model.StatusPaused,
			TotalSpent:         9900,
			BillingAddress:     model.BillingAddress{City: "Osaka", Country: "JP"},
			PaymentMethods:     []model.PaymentMethod{{Type: "jcb", IsDefault: true}},
			CreatedAt:          base.AddDate(0, -8, 0),
			LastLogin:          base.AddDate(0, 0, -30),
			UpdatedAt:          base.AddDate(0, 0, -30),
		},
	}

	subscriptions := []model.Subscription{
		{
			ID:              "sub_demo_001",
			UserID:          "cus_demo_001",
			PlanID:          "prod_premium",
			PlanName:        "Premium",
			Status:          model.StatusActive,
			Amount:          2990,
			Currency:        "USD",
			BillingCycle:    model.CycleMonthly,
			StartDate:       base.AddDate(-1, 0, 0),
			NextBillingDate: base.AddDate(0, 1, 0),
			AutoRenew:       true,
			UpdatedAt:       base,
		},
		{
			ID:           "sub_demo_002",
			UserID:       "cus_demo_002",
			PlanID:       "prod_mega",
			PlanName:     "Mega",
			Status:       model.StatusTrial,
			Amount:       1990,
			Currency:     "USD",
			BillingCycle: model.CycleTrial,
			StartDate:    base.AddDate(0, 0, -10),
			EndDate:      base.AddDate(0, 0, 4),
			AutoRenew:    true,
			UpdatedAt:    base.AddDate(0, 0, -10),
		},
		{
			ID:              "sub_demo_003",
			UserID:          "cus_demo_003",
			PlanID:          "prod_basic",
			PlanName:        "Basic",
			Status:          model.StatusPaused,
			Amount:          990,
			Currency:        "USD",
			BillingCycle:    model.CycleMonthly,
			StartDate:       base.AddDate(0, -8, 0),
			NextBillingDate: base.AddDate(0, 1, 0),
			AutoRenew:       true,
			PauseReason:     "travelling for the summer",
			UpdatedAt:       base.AddDate(0, 0, -30),
		},
	}

	invoices := []model.Invoice{
		{
			ID:            "inv_demo_001",
			CustomerID:    "cus_demo_001",
			Amount:        2990,
			Status:        model.InvoicePaid,
			DueDate:       base.AddDate(0, 0, -15),
			PaymentMethod: "visa",
			Items: []model.InvoiceItem{
				{Description: "Premium plan - monthly", Amount: 2990},
			},
			CreatedAt: base.AddDate(0, -1, 0),
			UpdatedAt: base.AddDate(0, 0, -15),
		},
		{
			ID:         "inv_demo_002",
			CustomerID: "cus_demo_001",
			Amount:     4980,
			Status:     model.InvoicePending,
			DueDate:    base.AddDate(0, 0, 15),
			Items: []model.InvoiceItem{
				{Description: "Premium plan - monthly", Amount: 2990},
				{Description: "Sports add-on", Amount: 1990},
			},
			CreatedAt: base,
			UpdatedAt: base,
		},
		{
			// Legacy row from before invoices were keyed by customer id.
			ID:           "inv_demo_003",
			CustomerName: "Aiko Tanaka",
			Amount:       990,
			Status:       model.InvoiceOverdue,
			DueDate:      base.AddDate(0, -1, 0),
			Items: []model.InvoiceItem{
				{Description: "Basic plan - monthly", Amount: 990},
			},
			CreatedAt: base.AddDate(0, -2, 0),
			UpdatedAt: base.AddDate(0, -1, 0),
		},
	}

	tickets := []model.Ticket{
		{
			ID:         "tic_demo_001",
			CustomerID: "cus_demo_001",
			Subject:    "Playback stutters on 4K titles",
			Message:    "Streams drop to 720p every evening around 8pm.",
			Priority:   model.PriorityHigh,
			Status:     model.TicketOpen,
			CreatedAt:  base.AddDate(0, 0, -2),
			UpdatedAt:  base.AddDate(0, 0, -2),
		},
		{
			ID:         "tic_demo_002",
			CustomerID: "cus_demo_003",
			Subject:    "Charged while paused",
			Message:    "My subscription is paused but I still see a pending invoice.",
			Priority:   model.PriorityUrgent,
			Status:     model.TicketInProgress,
			CreatedAt:  base.AddDate(0, 0, -5),
			UpdatedAt:  base.AddDate(0, 0, -1),
		},
	}

	products := []model.Product{
		{
			ID:           "prod_basic",
			Name:         "Basic",
			Slug:         "basic",
			Description:  "1 screen, HD streaming",
			Price:        990,
			Currency:     "USD",
			BillingCycle: model.CycleMonthly,
			Features:     []string{"1 screen", "HD", "mobile downloads"},
			Active:       true,
			CreatedAt:    base.AddDate(-2, 0, 0),
			UpdatedAt:    base.AddDate(-2, 0, 0),
		},
		{
			ID:           "prod_mega",
			Name:         "Mega",
			Slug:         "mega",
			Description:  "2 screens, Full HD, offline viewing",
			Price:        1990,
			Currency:     "USD",
			BillingCycle: model.CycleMonthly,
			Features:     []string{"2 screens", "Full HD", "offline viewing"},
			Active:       true,
			CreatedAt:    base.AddDate(-2, 0, 0),
			UpdatedAt:    base.AddDate(-2, 0, 0),
		},
		{
			ID:           "prod_premium",
			Name:         "Premium",
			Slug:         "premium",
			Description:  "4 screens, 4K + HDR, spatial audio",
			Price:        2990,
			Currency:     "USD",
			BillingCycle: model.CycleMonthly,
			Features:     []string{"4 screens", "4K + HDR", "spatial audio", "priority support"},
			Active:       true,
			CreatedAt:    base.AddDate(-2, 0, 0),
			UpdatedAt:    base.AddDate(-2, 0, 0),
		},
	}

	return store.Dataset{
		Customers:     customers,
		Subscriptions: subscriptions,
		Invoices:      invoices,
		Tickets:       tickets,
		Products:      products,
	}
}
