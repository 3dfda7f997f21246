package access

import (
	"github.com/pkg/errors"

	"github.com/stillpointfm/gateway/pkg/model"
)

// CanAccessFeed decides feed level access for an entire collection, before
// any item level filtering happens. The rule matches the per entry checks,
// evaluated directly against the collection object.
//
// The pseudo collections model.AllMeditations and model.AllLiturgies pass
// through here as well, their checks consult the entitlement flags only.
func CanAccessFeed(collection *model.Collection, pledge *model.Pledge) (bool, error) {
	switch collection.Kind {
	case model.KindPodcast:
		return canAccessPodcast(pledge, collection), nil

	case model.KindMeditationCategory:
		return pledge.CanAccessMeditations(), nil

	case model.KindLiturgy:
		return pledge.CanAccessLiturgies(), nil

	default:
		return false, errors.Errorf("unexpected collection kind %q (id %q)", collection.Kind, collection.ID)
	}
}
