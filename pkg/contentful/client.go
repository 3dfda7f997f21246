package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/stillpointfm/gateway/pkg/model"
)

const (
	defaultBaseURL     = "https://cdn.contentful.com"
	defaultEnvironment = "master"
	defaultPageSize    = 100
	defaultTimeout     = 30 * time.Second
)

// Client is a read only client for the content delivery API. All reads are
// idempotent and side effect free.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	space        string
	token        string
	environment  string
	bonusEntryID string
}

type Opts struct {
	Space       string
	AccessToken string
	// Environment defaults to "master".
	Environment string
	// BonusEntryID is the id of the entry holding the shared bonus resource
	// secret. Empty disables the bonus secret fetch.
	BonusEntryID string
	// BaseURL overrides the delivery API host, used in tests.
	BaseURL string
	Client  *http.Client
}

func NewClient(opts Opts) *Client {
	c := &Client{
		httpClient:   opts.Client,
		baseURL:      opts.BaseURL,
		space:        opts.Space,
		token:        opts.AccessToken,
		environment:  opts.Environment,
		bonusEntryID: opts.BonusEntryID,
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}

	if c.environment == "" {
		c.environment = defaultEnvironment
	}

	return c
}

// Query selects entries of one content type, optionally narrowed down to a
// parent collection.
type Query struct {
	ContentType string
	// Podcast filters episodes by their parent podcast id.
	Podcast string
	// Category filters meditations by their parent category id.
	Category string
	// Liturgy filters liturgy items by their parent liturgy id.
	Liturgy string
	Skip    int
	Limit   int
}

// GetEntry fetches a single entry by id. model.ErrNotFound is returned for
// unknown or unpublished entries.
func (c *Client) GetEntry(ctx context.Context, id string) (*model.Entry, error) {
	var raw rawEntry
	if err := c.get(ctx, "entries/"+id, url.Values{}, &raw); err != nil {
		return nil, err
	}

	return toEntry(&raw), nil
}

// GetCollection fetches a single collection (podcast, meditation category or
// liturgy) by id.
func (c *Client) GetCollection(ctx context.Context, id string) (*model.Collection, error) {
	var raw rawEntry
	if err := c.get(ctx, "entries/"+id, url.Values{}, &raw); err != nil {
		return nil, err
	}

	collection := toCollection(&raw)
	if collection == nil {
		return nil, errors.Errorf("entry %q is not a collection (%s)", raw.Sys.ID, raw.Sys.ContentType.Sys.ID)
	}

	return collection, nil
}

// GetEntries fetches one page of entries matching the query, together with
// the parent collections resolved from the response includes.
func (c *Client) GetEntries(ctx context.Context, q Query) (*model.Page, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	v := url.Values{}
	v.Set("content_type", q.ContentType)
	v.Set("skip", strconv.Itoa(q.Skip))
	v.Set("limit", strconv.Itoa(limit))
	v.Set("include", "1")

	if q.Podcast != "" {
		v.Set("fields.podcast.sys.id", q.Podcast)
	}

	if q.Category != "" {
		v.Set("fields.category.sys.id", q.Category)
	}

	if q.Liturgy != "" {
		v.Set("fields.liturgy.sys.id", q.Liturgy)
	}

	var env entriesEnvelope
	if err := c.get(ctx, "entries", v, &env); err != nil {
		return nil, err
	}

	page := &model.Page{
		Total:       env.Total,
		Skip:        env.Skip,
		Limit:       env.Limit,
		Collections: map[string]*model.Collection{},
	}

	for i := range env.Items {
		page.Items = append(page.Items, toEntry(&env.Items[i]))
	}

	for i := range env.Includes.Entry {
		if collection := toCollection(&env.Includes.Entry[i]); collection != nil {
			page.Collections[collection.ID] = collection
		}
	}

	return page, nil
}

// GetAllEntries walks every page of the query until a short page confirms
// the end, merging items in pagination order.
func (c *Client) GetAllEntries(ctx context.Context, q Query) (*model.Page, error) {
	if q.Limit == 0 {
		q.Limit = defaultPageSize
	}

	merged := &model.Page{Collections: map[string]*model.Collection{}}

	for {
		page, err := c.GetEntries(ctx, q)
		if err != nil {
			return nil, err
		}

		merged.Items = append(merged.Items, page.Items...)
		merged.Total = page.Total

		for id, collection := range page.Collections {
			merged.Collections[id] = collection
		}

		if len(page.Items) < q.Limit {
			break
		}

		q.Skip += len(page.Items)
	}

	merged.Limit = len(merged.Items)

	return merged, nil
}

// LookupTierByRewardID finds the tier definition bound to a Patreon reward.
func (c *Client) LookupTierByRewardID(ctx context.Context, rewardID string) (*model.Tier, error) {
	v := url.Values{}
	v.Set("content_type", string(model.KindTier))
	v.Set("fields.patreonRewardId", rewardID)
	v.Set("limit", "1")

	var env entriesEnvelope
	if err := c.get(ctx, "entries", v, &env); err != nil {
		return nil, err
	}

	if len(env.Items) == 0 {
		return nil, model.ErrNotFound
	}

	return toTier(&env.Items[0]), nil
}

// FetchBonusSecret reads the shared bonus resource secret. Returns an empty
// secret when no bonus entry is configured.
func (c *Client) FetchBonusSecret(ctx context.Context) (string, error) {
	if c.bonusEntryID == "" {
		return "", nil
	}

	var raw rawEntry
	if err := c.get(ctx, "entries/"+c.bonusEntryID, url.Values{}, &raw); err != nil {
		return "", errors.Wrap(err, "failed to fetch bonus secret entry")
	}

	return raw.Fields.Secret, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("access_token", c.token)

	u := fmt.Sprintf("%s/spaces/%s/environments/%s/%s?%s", c.baseURL, c.space, c.environment, path, query.Encode())

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create content request")
	}

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "content request failed")
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("content store responded with %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode content response")
	}

	return nil
}
