package model

import (
	"time"
)

// Kind is the content type tag carried by every entry and collection
// fetched from the content store.
type Kind string

const (
	KindPodcast            = Kind("podcast")
	KindPodcastEpisode     = Kind("podcastEpisode")
	KindMeditation         = Kind("meditation")
	KindMeditationCategory = Kind("meditationCategory")
	KindLiturgy            = Kind("liturgy")
	KindLiturgyItem        = Kind("liturgyItem")
	KindTier               = Kind("tier")
	KindGeneric            = Kind("generic")
)

// Gated reports whether entries of this kind require an access decision
// before being returned to a client.
func (k Kind) Gated() bool {
	switch k {
	case KindPodcastEpisode, KindMeditation, KindLiturgyItem:
		return true
	default:
		return false
	}
}

// EntryFields is a typed projection of the raw field map coming from the
// content store. Media locators are omitted from serialized output when
// empty, which is how redaction removes them.
type EntryFields struct {
	Title                string     `json:"title,omitempty"`
	Description          string     `json:"description,omitempty"`
	MediaURL             string     `json:"mediaUrl,omitempty"`
	MediaAssetID         string     `json:"mediaAsset,omitempty"`
	ImageURL             string     `json:"imageUrl,omitempty"`
	PublishedAt          *time.Time `json:"publishedAt,omitempty"`
	FreePreview          bool       `json:"isFreePreview,omitempty"`
	MinimumPledgeDollars *float64   `json:"minimumPledgeDollars,omitempty"`
	PodcastID            string     `json:"podcast,omitempty"`
	CategoryID           string     `json:"category,omitempty"`
	LiturgyID            string     `json:"liturgy,omitempty"`
}

// Entry is an immutable content item snapshot, fetched per request.
type Entry struct {
	ID     string      `json:"id"`
	Kind   Kind        `json:"kind"`
	Fields EntryFields `json:"fields"`
}

// Collection is a parent grouping for entries. A podcast may declare a
// minimum pledge in dollars, nil meaning the podcast is entirely public.
// Meditation categories and liturgies are gated by entitlement flags only.
type Collection struct {
	ID                   string   `json:"id"`
	Kind                 Kind     `json:"kind"`
	Title                string   `json:"title,omitempty"`
	MinimumPledgeDollars *float64 `json:"minimumPledgeDollars,omitempty"`
}

// Pseudo collections aggregating every meditation and liturgy item. Access
// checks consult the kind only, so no content store lookup is needed.
var (
	AllMeditations = &Collection{ID: "meditations", Kind: KindMeditationCategory, Title: "All Meditations"}
	AllLiturgies   = &Collection{ID: "liturgies", Kind: KindLiturgy, Title: "All Liturgies"}
)

// Tier is a membership level definition stored in the content system.
type Tier struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	PatreonRewardID      string   `json:"patreonRewardId"`
	AccessiblePodcasts   []string `json:"accessiblePodcasts,omitempty"`
	CanAccessMeditations bool     `json:"canAccessMeditations"`
	CanAccessLiturgies   bool     `json:"canAccessLiturgies"`
	CanListenAdFree      bool     `json:"canListenAdFree"`
}

// FilteredEntry is an entry annotated with the viewer's access outcome.
// PatronsOnly is set for gated kinds only.
type FilteredEntry struct {
	Entry
	PatronsOnly *bool `json:"patronsOnly,omitempty"`
}

// Page is a single page (or a merged set of pages) of entries, together with
// the parent collections resolved from the response.
type Page struct {
	Items       []*Entry               `json:"items"`
	Total       int                    `json:"total"`
	Skip        int                    `json:"skip"`
	Limit       int                    `json:"limit"`
	Collections map[string]*Collection `json:"-"`
}

// FilteredPage is a page after entry filtering. Items that must not be
// exposed are dropped, the order of the survivors is preserved.
type FilteredPage struct {
	Items []*FilteredEntry `json:"items"`
	Total int              `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
}
