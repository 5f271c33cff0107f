package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/customer"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/subscription"
)

var enabled bool

// Init wires the Stripe SDK. With no key the console runs in demo mode and
// every payment call is a no-op; the store records subscriptions and
// invoices either way, since payment success is established before the
// store is asked to write.
func Init(secretKey string) {
	stripe.Key = secretKey
	enabled = secretKey != ""
}

func Enabled() bool {
	return enabled
}

// EnsureCustomer creates the Stripe-side customer record.
func EnsureCustomer(email, name string) (string, error) {
	if !enabled {
		return "", nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("could not create Stripe customer: %v", err)
	}
	return cust.ID, nil
}

// CreateSubscription starts billing for a plan price and returns the Stripe
// subscription id.
func CreateSubscription(stripeCustomerID, priceID string) (string, error) {
	if !enabled {
		return "", nil
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(stripeCustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
	}
	sub, err := subscription.New(params)
	if err != nil {
		return "", fmt.Errorf("could not create Stripe subscription: %v", err)
	}
	return sub.ID, nil
}

// CancelSubscription stops billing on the Stripe side.
func CancelSubscription(stripeSubID string) error {
	if !enabled || stripeSubID == "" {
		return nil
	}

	if _, err := subscription.Cancel(stripeSubID, nil); err != nil {
		return fmt.Errorf("could not cancel Stripe subscription: %v", err)
	}
	return nil
}

// ChargeInvoice takes payment for a one-off invoice amount (minor units).
func ChargeInvoice(stripeCustomerID string, amount int64, currency string) (string, error) {
	if !enabled {
		return "", nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Customer: stripe.String(stripeCustomerID),
		PaymentMethodTypes: []*string{
			stripe.String("card"),
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("could not create payment intent: %v", err)
	}
	return intent.ID, nil
}
