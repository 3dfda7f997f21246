package contentful

import (
	"time"

	"github.com/stillpointfm/gateway/pkg/model"
)

// Wire shapes of the content delivery API. Raw responses are projected into
// typed models right here at the ingestion boundary, nothing downstream
// operates on loose maps.

type entriesEnvelope struct {
	Total    int        `json:"total"`
	Skip     int        `json:"skip"`
	Limit    int        `json:"limit"`
	Items    []rawEntry `json:"items"`
	Includes struct {
		Entry []rawEntry `json:"Entry"`
	} `json:"includes"`
}

type rawEntry struct {
	Sys struct {
		ID          string `json:"id"`
		ContentType struct {
			Sys struct {
				ID string `json:"id"`
			} `json:"sys"`
		} `json:"contentType"`
	} `json:"sys"`
	Fields rawFields `json:"fields"`
}

type rawFields struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	MediaURL             string     `json:"mediaUrl"`
	MediaAsset           *rawLink   `json:"mediaAsset"`
	ImageURL             string     `json:"imageUrl"`
	PublishedAt          *time.Time `json:"publishedAt"`
	IsFreePreview        bool       `json:"isFreePreview"`
	MinimumPledgeDollars *float64   `json:"minimumPledgeDollars"`
	Podcast              *rawLink   `json:"podcast"`
	Category             *rawLink   `json:"category"`
	Liturgy              *rawLink   `json:"liturgy"`

	// Tier fields
	PatreonRewardID      string    `json:"patreonRewardId"`
	AccessiblePodcasts   []rawLink `json:"accessiblePodcasts"`
	CanAccessMeditations bool      `json:"canAccessMeditations"`
	CanAccessLiturgies   bool      `json:"canAccessLiturgies"`
	CanListenAdFree      bool      `json:"canListenAdFree"`

	// Bonus resource entry
	Secret string `json:"secret"`
}

type rawLink struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
}

func (l *rawLink) id() string {
	if l == nil {
		return ""
	}

	return l.Sys.ID
}

// kindOf maps a content type id onto the closed kind set. Content types this
// gateway does not know are generic and never gated.
func kindOf(contentTypeID string) model.Kind {
	switch k := model.Kind(contentTypeID); k {
	case model.KindPodcast, model.KindPodcastEpisode,
		model.KindMeditation, model.KindMeditationCategory,
		model.KindLiturgy, model.KindLiturgyItem,
		model.KindTier:
		return k
	default:
		return model.KindGeneric
	}
}

func toEntry(raw *rawEntry) *model.Entry {
	return &model.Entry{
		ID:   raw.Sys.ID,
		Kind: kindOf(raw.Sys.ContentType.Sys.ID),
		Fields: model.EntryFields{
			Title:                raw.Fields.Title,
			Description:          raw.Fields.Description,
			MediaURL:             raw.Fields.MediaURL,
			MediaAssetID:         raw.Fields.MediaAsset.id(),
			ImageURL:             raw.Fields.ImageURL,
			PublishedAt:          raw.Fields.PublishedAt,
			FreePreview:          raw.Fields.IsFreePreview,
			MinimumPledgeDollars: raw.Fields.MinimumPledgeDollars,
			PodcastID:            raw.Fields.Podcast.id(),
			CategoryID:           raw.Fields.Category.id(),
			LiturgyID:            raw.Fields.Liturgy.id(),
		},
	}
}

// toCollection projects a raw entry into a collection, or nil when the entry
// is not of a collection kind.
func toCollection(raw *rawEntry) *model.Collection {
	kind := kindOf(raw.Sys.ContentType.Sys.ID)

	switch kind {
	case model.KindPodcast, model.KindMeditationCategory, model.KindLiturgy:
	default:
		return nil
	}

	return &model.Collection{
		ID:                   raw.Sys.ID,
		Kind:                 kind,
		Title:                raw.Fields.Title,
		MinimumPledgeDollars: raw.Fields.MinimumPledgeDollars,
	}
}

func toTier(raw *rawEntry) *model.Tier {
	tier := &model.Tier{
		ID:                   raw.Sys.ID,
		Title:                raw.Fields.Title,
		PatreonRewardID:      raw.Fields.PatreonRewardID,
		CanAccessMeditations: raw.Fields.CanAccessMeditations,
		CanAccessLiturgies:   raw.Fields.CanAccessLiturgies,
		CanListenAdFree:      raw.Fields.CanListenAdFree,
	}

	for i := range raw.Fields.AccessiblePodcasts {
		tier.AccessiblePodcasts = append(tier.AccessiblePodcasts, raw.Fields.AccessiblePodcasts[i].Sys.ID)
	}

	return tier
}
