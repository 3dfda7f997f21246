package rss

import (
	"fmt"
	"strconv"
	"time"

	itunes "github.com/eduncan911/podcast"
	"github.com/pkg/errors"

	"github.com/stillpointfm/gateway/pkg/model"
)

const defaultCategory = "Religion & Spirituality"

// Build assembles an RSS feed for a podcast from already filtered episodes.
// Episodes the viewer cannot access keep their metadata but carry no
// enclosure, matching the patronsOnly contract of the entry filter.
func Build(collection *model.Collection, episodes []*model.FilteredEntry, hostname string) (*itunes.Podcast, error) {
	now := time.Now().UTC()

	feedURL := fmt.Sprintf("%s/feeds/%s.xml", hostname, collection.ID)

	p := itunes.New(collection.Title, feedURL, collection.Title, &now, &now)
	p.AddSubTitle(collection.Title)
	p.AddSummary(collection.Title)
	p.AddCategory(defaultCategory, nil)
	p.IExplicit = "no"

	for i, episode := range episodes {
		item := itunes.Item{
			GUID:        episode.ID,
			Link:        fmt.Sprintf("%s/entries/%s", hostname, episode.ID),
			Title:       episode.Fields.Title,
			Description: episode.Fields.Description,
			ISubtitle:   episode.Fields.Title,
			// Some apps prefer 1-based order
			IOrder: strconv.Itoa(i + 1),
		}

		// AddItem requires description to be not empty, use workaround
		if item.Description == "" {
			item.Description = " "
		}

		pubDate := episode.Fields.PublishedAt
		if pubDate == nil {
			pubDate = &now
		}

		item.AddPubDate(pubDate)
		item.AddSummary(item.Description)
		item.AddImage(episode.Fields.ImageURL)

		if episode.Fields.MediaURL != "" {
			item.AddEnclosure(episode.Fields.MediaURL, itunes.MP3, 0)
		}

		if _, err := p.AddItem(item); err != nil {
			return nil, errors.Wrapf(err, "failed to add episode to feed (id %q)", episode.ID)
		}
	}

	return &p, nil
}
