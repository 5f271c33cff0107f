// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

type EmailService struct {
	apiKey    string
	from      string
	endpoint  string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type SubscriptionStartedData struct {
	CustomerName string
	PlanName     string
	Amount       string
	Currency     string
	Cycle        string
	NextBilling  time.Time
	IsRenewal    bool
}

type SubscriptionPausedData struct {
	CustomerName string
	PlanName     string
	PauseReason  string
}

type SubscriptionCancelledData struct {
	CustomerName string
	PlanName     string
	CancelReason string
	CancelDate   time.Time
}

type SubscriptionExpiryWarningData struct {
	CustomerName string
	PlanName     string
	DaysLeft     int
	ExpiryDate   time.Time
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "StreamVault <billing@streamvault.tv>",
		endpoint:  "https://api.resend.com/emails",
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Sent %q to %s", subject, to)
	return nil
}

// Email sending methods
func (s *EmailService) SendSubscriptionStartedEmail(
	email, customerName, planName string,
	amount int64,
	currency string,
	cycle string,
	nextBilling time.Time,
	isRenewal bool,
) error {
	data := SubscriptionStartedData{
		CustomerName: customerName,
		PlanName:     planName,
		Amount:       fmt.Sprintf("%.2f", float64(amount)/100),
		Currency:     currency,
		Cycle:        cycle,
		NextBilling:  nextBilling,
		IsRenewal:    isRenewal,
	}
	subject := "Welcome to StreamVault! Your subscription is live 🎬"
	if isRenewal {
		subject = "Your StreamVault subscription has renewed 🎬"
	}
	return s.sendTemplateEmail(email, subject, "subscription_started.html", data)
}

func (s *EmailService) SendSubscriptionPausedEmail(email, customerName, planName, pauseReason string) error {
	data := SubscriptionPausedData{
		CustomerName: customerName,
		PlanName:     planName,
		PauseReason:  pauseReason,
	}
	return s.sendTemplateEmail(email, "Your Subscription Is Paused ⏸️", "subscription_paused.html", data)
}

func (s *EmailService) SendSubscriptionCancelledEmail(
	email, customerName, planName, cancelReason string,
	cancelDate time.Time,
) error {
	data := SubscriptionCancelledData{
		CustomerName: customerName,
		PlanName:     planName,
		CancelReason: cancelReason,
		CancelDate:   cancelDate,
	}
	return s.sendTemplateEmail(email, "Your Subscription Has Been Cancelled", "subscription_cancelled.html", data)
}

func (s *EmailService) SendSubscriptionExpiryWarning(
	email, customerName, planName string,
	expiryDate time.Time,
	daysLeft int,
) error {
	data := SubscriptionExpiryWarningData{
		CustomerName: customerName,
		PlanName:     planName,
		DaysLeft:     daysLeft,
		ExpiryDate:   expiryDate,
	}
	return s.sendTemplateEmail(
		email,
		fmt.Sprintf("Your Subscription Expires in %d Days ⚠️", daysLeft),
		"subscription_expiry_warning.html",
		data,
	)
}
