package model

// Pledge is the resolved membership state for one requesting user, scoped to
// this service's campaign. It is built once per inbound request from a fresh
// membership snapshot and never persisted.
//
// A nil *Pledge behaves exactly like a denied pledge: every entitlement
// accessor is nil safe and answers false.
type Pledge struct {
	// Patron is true when the user has a valid, non-declined pledge to the
	// campaign, even if no tier definition could be resolved for it.
	Patron bool

	// Tier is the membership level granting entitlements. Nil means no
	// tier-specific entitlements apply.
	Tier *Tier

	AmountCents int

	// BonusSecret is a shared secret for a bonus resource, fetched once a
	// valid tier is confirmed. Empty when unavailable.
	BonusSecret string
}

// CanAccessPodcast reports whether the tier explicitly allow-lists the
// given podcast id. Per podcast minimum pledge rules are independent of this.
func (p *Pledge) CanAccessPodcast(id string) bool {
	if p == nil || p.Tier == nil {
		return false
	}

	for _, pid := range p.Tier.AccessiblePodcasts {
		if pid == id {
			return true
		}
	}

	return false
}

func (p *Pledge) CanAccessMeditations() bool {
	return p != nil && p.Tier != nil && p.Tier.CanAccessMeditations
}

func (p *Pledge) CanAccessLiturgies() bool {
	return p != nil && p.Tier != nil && p.Tier.CanAccessLiturgies
}

func (p *Pledge) CanListenAdFree() bool {
	return p != nil && p.Tier != nil && p.Tier.CanListenAdFree
}
