package photos

import (
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/enums"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
)

const primarySlot = 1

// Decision is the resolved visibility for one photo. Withheld photos
// (Visible false, Blurred false) must never be surfaced with a URL.
type Decision struct {
	Slot        int
	Key         string
	Visible     bool
	Blurred     bool
	Restriction enums.PhotoRestriction
}

type Config struct {
	// RequireMutualLike gates the full album behind a mutual like even
	// for premium viewers. Off by default: premium unlocks the album.
	RequireMutualLike bool
}

type Policy struct {
	cfg Config
}

func NewPolicy(cfg Config) *Policy {
	return &Policy{cfg: cfg}
}

// Resolve applies the precedence blocked > premium > like-required.
func (p *Policy) Resolve(photo model.Photo, requesterPremium bool, interaction model.InteractionState) Decision {
	decision := Decision{
		Slot:        photo.Slot,
		Key:         photo.Key,
		Restriction: enums.PhotoRestrictionNone,
	}

	if interaction.Blocked {
		return decision
	}

	if photo.Slot == primarySlot {
		decision.Visible = true
		return decision
	}

	if interaction.Matched {
		decision.Visible = true
		return decision
	}

	if requesterPremium {
		if p.cfg.RequireMutualLike {
			decision.Blurred = true
			decision.Restriction = enums.PhotoRestrictionLikeRequired
			return decision
		}
		decision.Visible = true
		return decision
	}

	decision.Blurred = true
	decision.Restriction = enums.PhotoRestrictionPremiumOnly
	return decision
}

// ResolveAlbum resolves every photo of a candidate and reports whether
// the candidate is blocked for UI gating.
func (p *Policy) ResolveAlbum(album []model.Photo, requesterPremium bool, interaction model.InteractionState) ([]Decision, bool) {
	decisions := make([]Decision, 0, len(album))
	for _, photo := range album {
		decisions = append(decisions, p.Resolve(photo, requesterPremium, interaction))
	}
	return decisions, interaction.Blocked
}
