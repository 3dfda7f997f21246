package pledge

import (
	"context"

	"github.com/mxpv/patreon-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/stillpointfm/gateway/pkg/model"
)

// contentStore is the subset of the content client needed to resolve a pledge.
type contentStore interface {
	LookupTierByRewardID(ctx context.Context, rewardID string) (*model.Tier, error)
	FetchBonusSecret(ctx context.Context) (string, error)
}

// Resolver turns raw Patreon membership snapshots into normalized Pledge
// capability objects.
type Resolver struct {
	store      contentStore
	campaignID string
}

// NewResolver creates a resolver scoped to the campaign owned by the given
// creator id. Pledges to other campaigns are ignored.
func NewResolver(store contentStore, campaignID string) *Resolver {
	return &Resolver{store: store, campaignID: campaignID}
}

// Resolve normalizes a membership snapshot into a Pledge.
//
// A nil snapshot (anonymous caller) and a snapshot without a valid pledge to
// this campaign both resolve to a deny by default pledge, never an error. A
// pledge whose tier definition is missing from the content store degrades to
// a patron without tier entitlements instead of failing the request.
func (r *Resolver) Resolve(ctx context.Context, user *patreon.UserResponse) (*model.Pledge, error) {
	if user == nil {
		return &model.Pledge{}, nil
	}

	p := r.findCampaignPledge(user)
	if p == nil {
		return &model.Pledge{}, nil
	}

	resolved := &model.Pledge{
		Patron:      true,
		AmountCents: p.Attributes.AmountCents,
	}

	var rewardID string
	if p.Relationships.Reward != nil {
		rewardID = p.Relationships.Reward.Data.ID
	}

	if rewardID != "" {
		tier, err := r.store.LookupTierByRewardID(ctx, rewardID)
		switch {
		case err == nil:
			resolved.Tier = tier
		case errors.Cause(err) == model.ErrNotFound:
			log.WithField("reward_id", rewardID).Warn("no tier definition for reward, degrading to tierless patron")
		default:
			return nil, errors.Wrapf(err, "failed to look up tier for reward %q", rewardID)
		}
	}

	if resolved.Tier != nil {
		secret, err := r.store.FetchBonusSecret(ctx)
		if err != nil {
			// The bonus secret is auxiliary, never block pledge resolution on it.
			log.WithError(err).Error("failed to fetch bonus secret")
		} else {
			resolved.BonusSecret = secret
		}
	}

	return resolved, nil
}

// findCampaignPledge locates a valid pledge to this service's campaign among
// the includes of the membership snapshot. Declined and paused pledges grant
// nothing and are treated as absent.
func (r *Resolver) findCampaignPledge(user *patreon.UserResponse) *patreon.Pledge {
	for _, item := range user.Included.Items {
		p, ok := item.(*patreon.Pledge)
		if !ok {
			continue
		}

		if p.Relationships.Creator == nil || p.Relationships.Creator.Data.ID != r.campaignID {
			continue
		}

		if p.Attributes.DeclinedSince.Valid {
			continue
		}

		if p.Attributes.IsPaused != nil && *p.Attributes.IsPaused {
			continue
		}

		return p
	}

	return nil
}
