package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamvault_backend/internal/model"
	"streamvault_backend/internal/store"
)

func statusPtr(s model.SubscriptionStatus) *model.SubscriptionStatus { return &s }

func addActiveSubscription(t *testing.T, s *store.Store, id, userID string) model.Subscription {
	t.Helper()
	sub, err := s.AddSubscription(model.Subscription{
		ID:       id,
		UserID:   userID,
		PlanName: "Premium",
		Amount:   2990,
		Status:   model.StatusActive,
	})
	require.NoError(t, err)
	return sub
}

func TestPauseRequiresReason(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	_, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status: statusPtr(model.StatusPaused),
	})
	assert.ErrorIs(t, err, store.ErrReasonRequired)

	// A failed transition leaves both records untouched.
	sub, err := s.Subscription("s1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, sub.Status)

	cust, err := s.Customer("c1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, cust.SubscriptionStatus)
}

func TestPauseScenario(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	sub, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:      statusPtr(model.StatusPaused),
		PauseReason: strPtr("cost"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaused, sub.Status)
	assert.Equal(t, "cost", sub.PauseReason)

	cust, err := s.Customer("c1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaused, cust.SubscriptionStatus)
}

func TestResumeClearsPauseReason(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	_, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:      statusPtr(model.StatusPaused),
		PauseReason: strPtr("cost"),
	})
	require.NoError(t, err)

	sub, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status: statusPtr(model.StatusActive),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, sub.Status)
	assert.Empty(t, sub.PauseReason)

	cust, err := s.Customer("c1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, cust.SubscriptionStatus)
}

func TestCancelRequiresReason(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	_, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status: statusPtr(model.StatusCancelled),
	})
	assert.ErrorIs(t, err, store.ErrReasonRequired)
}

func TestCancelInvariants(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	sub, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:       statusPtr(model.StatusCancelled),
		CancelReason: strPtr("too expensive"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusCancelled, sub.Status)
	assert.False(t, sub.AutoRenew)
	require.NotNil(t, sub.CancelDate)
	assert.False(t, sub.CancelDate.IsZero())

	cust, err := s.Customer("c1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cust.SubscriptionStatus)
}

func TestCancelledIsTerminal(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	_, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:       statusPtr(model.StatusCancelled),
		CancelReason: strPtr("moving"),
	})
	require.NoError(t, err)

	_, err = s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status: statusPtr(model.StatusActive),
	})
	var vErr *store.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestTrialTransitions(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	sub, err := s.AddSubscription(model.Subscription{
		ID:           "s1",
		UserID:       "c1",
		PlanName:     "Mega",
		Status:       model.StatusTrial,
		BillingCycle: model.CycleTrial,
	})
	require.NoError(t, err)
	assert.False(t, sub.EndDate.IsZero())

	// trial -> paused is not a legal transition
	_, err = s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:      statusPtr(model.StatusPaused),
		PauseReason: strPtr("whatever"),
	})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)

	// trial -> cancelled is an early opt-out
	sub, err = s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:       statusPtr(model.StatusCancelled),
		CancelReason: strPtr("not for me"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, sub.Status)
	assert.False(t, sub.AutoRenew)
}

func TestTrialToActive(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")

	_, err := s.AddSubscription(model.Subscription{
		ID:           "s1",
		UserID:       "c1",
		PlanName:     "Mega",
		Status:       model.StatusTrial,
		BillingCycle: model.CycleTrial,
	})
	require.NoError(t, err)

	sub, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status: statusPtr(model.StatusActive),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, sub.Status)

	cust, err := s.Customer("c1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, cust.SubscriptionStatus)
}

func TestAddSubscriptionValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddSubscription(model.Subscription{Amount: 990})
	var vErr *store.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "user_id", vErr.Field)

	_, err = s.AddSubscription(model.Subscription{UserID: "c1", Amount: -5})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)
}

func TestLifecycleWithOrphanedSubscription(t *testing.T) {
	s := newTestStore(t)
	addCustomer(t, s, "c1", "A", "a@b.com")
	addActiveSubscription(t, s, "s1", "c1")

	require.NoError(t, s.RemoveCustomer("c1"))

	// Status changes still apply; the missing customer is tolerated.
	sub, err := s.UpdateSubscription("s1", model.SubscriptionPatch{
		Status:       statusPtr(model.StatusCancelled),
		CancelReason: strPtr("account closed"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, sub.Status)
}
