package plan

type PlanType string
type Feature string

const (
	BasicPlan   PlanType = "basic"
	MegaPlan    PlanType = "mega"
	PremiumPlan PlanType = "premium"
)

const (
	OfflineViewing  Feature = "offline_viewing"
	UltraHD         Feature = "ultra_hd"
	SpatialAudio    Feature = "spatial_audio"
	MaxScreens      Feature = "max_screens"
	EmailSupport    Feature = "email_support"
	PrioritySupport Feature = "priority_support"
)

type PlanLimits struct {
	MaxScreens      int
	AllowedFeatures map[Feature]bool
}

var PlanFeatures = map[PlanType]PlanLimits{
	BasicPlan: {
		MaxScreens: 1,
		AllowedFeatures: map[Feature]bool{
			OfflineViewing:  false,
			UltraHD:         false,
			SpatialAudio:    false,
			EmailSupport:    true,
			PrioritySupport: false,
		},
	},
	MegaPlan: {
		MaxScreens: 2,
		AllowedFeatures: map[Feature]bool{
			OfflineViewing:  true,
			UltraHD:         false,
			SpatialAudio:    false,
			EmailSupport:    true,
			PrioritySupport: false,
		},
	},
	PremiumPlan: {
		MaxScreens: 4,
		AllowedFeatures: map[Feature]bool{
			OfflineViewing:  true,
			UltraHD:         true,
			SpatialAudio:    true,
			EmailSupport:    true,
			PrioritySupport: true,
		},
	},
}

// Helper functions
func CanUseFeature(plan PlanType, feature Feature) bool {
	limits, exists := PlanFeatures[plan]
	if !exists {
		return false
	}
	return limits.AllowedFeatures[feature]
}

func GetPlanLimits(plan PlanType) PlanLimits {
	return PlanFeatures[plan]
}

// Normalize maps a free-text customer plan field onto a known plan type,
// defaulting to basic.
func Normalize(raw string) PlanType {
	switch PlanType(raw) {
	case MegaPlan:
		return MegaPlan
	case PremiumPlan:
		return PremiumPlan
	default:
		return BasicPlan
	}
}
