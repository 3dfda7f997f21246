package access

import (
	"github.com/pkg/errors"

	"github.com/stillpointfm/gateway/pkg/model"
)

// CanAccess decides whether the given pledge may view the entry. Pure
// function, no I/O.
//
// collections must contain the parent podcast of every episode passed in. A
// missing parent is a data integrity fault reported via
// model.ErrDanglingReference with access denied, never silently granted.
//
// A kind outside the known set reaching this dispatch is a programming error
// and fails loudly rather than defaulting to deny.
func CanAccess(pledge *model.Pledge, entry *model.Entry, collections map[string]*model.Collection) (bool, error) {
	switch entry.Kind {
	case model.KindPodcastEpisode:
		podcast, ok := collections[entry.Fields.PodcastID]
		if !ok || podcast == nil {
			return false, errors.Wrapf(model.ErrDanglingReference,
				"episode %q references podcast %q", entry.ID, entry.Fields.PodcastID)
		}

		return canAccessPodcast(pledge, podcast), nil

	case model.KindMeditation:
		return pledge.CanAccessMeditations(), nil

	case model.KindLiturgyItem:
		return pledge.CanAccessLiturgies(), nil

	case model.KindPodcast, model.KindMeditationCategory, model.KindLiturgy, model.KindTier, model.KindGeneric:
		// Collection metadata, tiers and generic entries are never gated.
		return true, nil

	default:
		return false, errors.Errorf("unexpected entry kind %q (id %q)", entry.Kind, entry.ID)
	}
}

// A podcast without a minimum pledge is entirely public. Otherwise access
// comes from the tier's explicit per podcast allow list.
func canAccessPodcast(pledge *model.Pledge, podcast *model.Collection) bool {
	if podcast.MinimumPledgeDollars == nil {
		return true
	}

	return pledge.CanAccessPodcast(podcast.ID)
}
