package filter

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/stillpointfm/gateway/pkg/access"
	"github.com/stillpointfm/gateway/pkg/model"
)

// Entry applies the viewer's access decision to a single entry.
//
// Entries of non gated kinds pass through unchanged with PatronsOnly unset.
// A podcast episode whose parent podcast cannot be resolved returns
// (nil, nil): the entry is dropped from the result set and the fault is
// logged, it must never leak to any client. When access is denied the media
// locator fields are removed, unless the entry is marked as a free preview,
// in which case the full content stays and PatronsOnly is purely a UI hint.
//
// Filtering is idempotent: re-filtering a filtered entry with the same
// pledge produces an identical result.
func Entry(entry *model.Entry, pledge *model.Pledge, collections map[string]*model.Collection) (*model.FilteredEntry, error) {
	if !entry.Kind.Gated() {
		return &model.FilteredEntry{Entry: *entry}, nil
	}

	granted, err := access.CanAccess(pledge, entry, collections)
	if err != nil {
		if errors.Cause(err) == model.ErrDanglingReference {
			log.WithError(err).WithField("entry_id", entry.ID).Warn("dropping entry with dangling parent reference")
			return nil, nil
		}

		return nil, err
	}

	filtered := &model.FilteredEntry{Entry: *entry, PatronsOnly: boolPtr(!granted)}
	if granted || entry.Fields.FreePreview {
		return filtered, nil
	}

	// Redaction removes the media locators entirely, empty fields are
	// omitted from serialized output.
	filtered.Fields.MediaURL = ""
	filtered.Fields.MediaAssetID = ""

	return filtered, nil
}

// Page filters every item of a paginated response. Items that filtered to
// nil are dropped, the original order of the survivors is preserved.
func Page(page *model.Page, pledge *model.Pledge) (*model.FilteredPage, error) {
	out := &model.FilteredPage{
		Items: []*model.FilteredEntry{},
		Total: page.Total,
		Skip:  page.Skip,
		Limit: page.Limit,
	}

	for _, item := range page.Items {
		filtered, err := Entry(item, pledge, page.Collections)
		if err != nil {
			return nil, err
		}

		if filtered == nil {
			continue
		}

		out.Items = append(out.Items, filtered)
	}

	return out, nil
}

// One filters a single directly fetched entry. There is no surrounding list
// to drop a dangling entry from, so the fault is returned to the caller as
// model.ErrDanglingReference instead (the HTTP layer answers not found).
func One(entry *model.Entry, pledge *model.Pledge, collections map[string]*model.Collection) (*model.FilteredEntry, error) {
	filtered, err := Entry(entry, pledge, collections)
	if err != nil {
		return nil, err
	}

	if filtered == nil {
		return nil, errors.Wrapf(model.ErrDanglingReference, "entry %q", entry.ID)
	}

	return filtered, nil
}

func boolPtr(b bool) *bool {
	return &b
}
