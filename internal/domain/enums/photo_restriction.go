package enums

type PhotoRestriction string

const (
	PhotoRestrictionNone         PhotoRestriction = "NONE"
	PhotoRestrictionPremiumOnly  PhotoRestriction = "PREMIUM_ONLY"
	PhotoRestrictionLikeRequired PhotoRestriction = "LIKE_REQUIRED"
)
