package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"streamvault_backend/pkg/plan"
)

func TestCanUseFeature(t *testing.T) {
	assert.False(t, plan.CanUseFeature(plan.BasicPlan, plan.OfflineViewing))
	assert.True(t, plan.CanUseFeature(plan.MegaPlan, plan.OfflineViewing))
	assert.True(t, plan.CanUseFeature(plan.PremiumPlan, plan.PrioritySupport))
	assert.False(t, plan.CanUseFeature(plan.MegaPlan, plan.PrioritySupport))
	assert.False(t, plan.CanUseFeature(plan.PlanType("unknown"), plan.EmailSupport))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, plan.MegaPlan, plan.Normalize("mega"))
	assert.Equal(t, plan.PremiumPlan, plan.Normalize("premium"))
	assert.Equal(t, plan.BasicPlan, plan.Normalize("basic"))
	assert.Equal(t, plan.BasicPlan, plan.Normalize(""))
	assert.Equal(t, plan.BasicPlan, plan.Normalize("vip"))
}

func TestGetPlanLimits(t *testing.T) {
	assert.Equal(t, 1, plan.GetPlanLimits(plan.BasicPlan).MaxScreens)
	assert.Equal(t, 4, plan.GetPlanLimits(plan.PremiumPlan).MaxScreens)
}
