package handler

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mxpv/patreon-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/stillpointfm/gateway/pkg/access"
	"github.com/stillpointfm/gateway/pkg/contentful"
	"github.com/stillpointfm/gateway/pkg/filter"
	"github.com/stillpointfm/gateway/pkg/model"
	"github.com/stillpointfm/gateway/pkg/rss"
	"github.com/stillpointfm/gateway/pkg/session"
	"github.com/stillpointfm/gateway/pkg/token"
)

const contentfulTopicHeader = "X-Contentful-Topic"

type contentStore interface {
	GetEntry(ctx context.Context, id string) (*model.Entry, error)
	GetCollection(ctx context.Context, id string) (*model.Collection, error)
	GetAllEntries(ctx context.Context, q contentful.Query) (*model.Page, error)
}

type pledgeResolver interface {
	Resolve(ctx context.Context, user *patreon.UserResponse) (*model.Pledge, error)
}

type membershipClient interface {
	FetchMembershipSnapshot(ctx context.Context, credential *oauth2.Token) (*patreon.UserResponse, error)
}

type tokenStore interface {
	Issue(credential *oauth2.Token) (string, error)
	Get(key string) (*oauth2.Token, error)
	Invalidate(key string) error
}

type notifier interface {
	NotifyNewEntry(ctx context.Context, entry *model.Entry) error
}

type Opts struct {
	CookieSecret          string
	Hostname              string
	PatreonClientID       string
	PatreonSecret         string
	PatreonRedirectURL    string
	PatreonWebhooksSecret string
}

type handler struct {
	content    contentStore
	pledges    pledgeResolver
	membership membershipClient
	tokens     tokenStore
	notify     notifier

	oauth2                oauth2.Config
	hostname              string
	patreonWebhooksSecret string
}

func New(content contentStore, pledges pledgeResolver, membership membershipClient, tokens tokenStore, notify notifier, opts Opts) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	store := sessions.NewCookieStore([]byte(opts.CookieSecret))
	r.Use(sessions.Sessions("gateway", store))

	h := handler{
		content:               content,
		pledges:               pledges,
		membership:            membership,
		tokens:                tokens,
		notify:                notify,
		hostname:              opts.Hostname,
		patreonWebhooksSecret: opts.PatreonWebhooksSecret,
	}

	// OAuth 2 configuration

	h.oauth2 = oauth2.Config{
		ClientID:     opts.PatreonClientID,
		ClientSecret: opts.PatreonSecret,
		RedirectURL:  opts.PatreonRedirectURL,
		Scopes:       []string{"users", "pledges-to-me", "my-campaign"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  patreon.AuthorizationURL,
			TokenURL: patreon.AccessTokenURL,
		},
	}

	// Handlers

	r.GET("/user/login", h.login)
	r.GET("/user/logout", h.logout)
	r.GET("/user/patreon", h.patreonCallback)

	r.GET("/api/ping", h.ping)
	r.GET("/api/user", h.user)
	r.GET("/api/entries", h.entries)
	r.GET("/api/entries/:id", h.entry)
	r.GET("/feeds/:id", h.feed)
	r.POST("/api/webhooks/patreon", h.patreonWebhook)
	r.POST("/api/webhooks/contentful", h.contentfulWebhook)

	return r
}

func (h handler) login(c *gin.Context) {
	state, err := session.SetState(c)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, h.oauth2.AuthCodeURL(state))
}

func (h handler) logout(c *gin.Context) {
	if key := session.Token(c); key != "" {
		if err := h.tokens.Invalidate(key); err != nil {
			log.WithError(err).Error("failed to invalidate session token")
		}
	}

	session.Clear(c)

	c.Redirect(http.StatusFound, "/")
}

func (h handler) patreonCallback(c *gin.Context) {
	// Validate session state
	if session.State(c) != c.Query("state") {
		c.String(http.StatusUnauthorized, "invalid state")
		return
	}

	// Exchange code with tokens
	credential, err := h.oauth2.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	// The client only ever receives an opaque session token, the Patreon
	// credential stays in the token store.
	key, err := h.tokens.Issue(credential)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	if err := session.SetToken(c, key); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h handler) user(c *gin.Context) {
	pledge, err := h.pledgeForSession(c.Request.Context(), session.Token(c))
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	tier := ""
	if pledge.Tier != nil {
		tier = pledge.Tier.Title
	}

	payload := gin.H{
		"patron":                 pledge.Patron,
		"tier":                   tier,
		"can_access_meditations": pledge.CanAccessMeditations(),
		"can_access_liturgies":   pledge.CanAccessLiturgies(),
		"can_listen_ad_free":     pledge.CanListenAdFree(),
	}

	// The bonus secret is pass-through data for the app, present only when
	// the pledge resolved to a tier.
	if pledge.BonusSecret != "" {
		payload["bonus_secret"] = pledge.BonusSecret
	}

	c.JSON(http.StatusOK, payload)
}

func (h handler) entries(c *gin.Context) {
	ctx := c.Request.Context()

	q := contentful.Query{
		ContentType: c.Query("content_type"),
		Podcast:     c.Query("podcast"),
		Category:    c.Query("category"),
	}

	if q.ContentType == "" {
		c.JSON(badRequest(errors.New("content_type is required")))
		return
	}

	var (
		page   *model.Page
		pledge *model.Pledge
	)

	// Membership and content fetches are independent, run them in parallel.
	key := session.Token(c)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		page, err = h.content.GetAllEntries(groupCtx, q)
		return err
	})

	group.Go(func() error {
		var err error
		pledge, err = h.pledgeForSession(groupCtx, key)
		return err
	})

	if err := group.Wait(); err != nil {
		c.JSON(internalError(err))
		return
	}

	filtered, err := filter.Page(page, pledge)
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusOK, filtered)
}

func (h handler) entry(c *gin.Context) {
	ctx := c.Request.Context()

	entry, err := h.content.GetEntry(ctx, c.Param("id"))
	if err != nil {
		if errors.Cause(err) == model.ErrNotFound {
			c.JSON(notFound())
			return
		}

		c.JSON(internalError(err))
		return
	}

	pledge, err := h.pledgeForSession(ctx, session.Token(c))
	if err != nil {
		c.JSON(internalError(err))
		return
	}

	collections := map[string]*model.Collection{}
	if entry.Kind == model.KindPodcastEpisode && entry.Fields.PodcastID != "" {
		parent, err := h.content.GetCollection(ctx, entry.Fields.PodcastID)
		if err != nil && errors.Cause(err) != model.ErrNotFound {
			c.JSON(internalError(err))
			return
		}

		if parent != nil {
			collections[parent.ID] = parent
		}
	}

	filtered, err := filter.One(entry, pledge, collections)
	if err != nil {
		// A dangling entry must never leak, answer as if it does not exist.
		if errors.Cause(err) == model.ErrDanglingReference {
			c.JSON(notFound())
			return
		}

		c.JSON(internalError(err))
		return
	}

	c.JSON(http.StatusOK, filtered)
}

func (h handler) feed(c *gin.Context) {
	ctx := c.Request.Context()

	id := strings.TrimSuffix(c.Param("id"), ".xml")
	if id == "" {
		c.String(http.StatusBadRequest, "invalid feed id")
		return
	}

	collection, err := h.feedCollection(ctx, id)
	if err != nil {
		if errors.Cause(err) == model.ErrNotFound {
			c.String(http.StatusNotFound, "feed not found")
			return
		}

		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	pledge, err := h.pledgeForSession(ctx, session.Token(c))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	granted, err := access.CanAccessFeed(collection, pledge)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	if !granted {
		c.String(http.StatusForbidden, "this feed is available to patrons only")
		return
	}

	page, err := h.content.GetAllEntries(ctx, feedQuery(collection))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	filtered, err := filter.Page(page, pledge)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	feed, err := rss.Build(collection, filtered.Items, h.hostname)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	const feedContentType = "application/rss+xml; charset=UTF-8"
	c.Data(http.StatusOK, feedContentType, feed.Bytes())
}

func (h handler) patreonWebhook(c *gin.Context) {
	// Read body to byte array in order to verify signature first
	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		log.WithError(err).Error("failed to read webhook request")
		c.Status(http.StatusBadRequest)
		return
	}

	signature := c.GetHeader(patreon.HeaderSignature)
	valid, err := patreon.VerifySignature(body, h.patreonWebhooksSecret, signature)
	if err != nil {
		log.WithError(err).Error("failed to verify signature")
		c.Status(http.StatusBadRequest)
		return
	}

	if !valid {
		log.Errorf("webhook signatures are not equal (header: %s)", signature)
		c.Status(http.StatusUnauthorized)
		return
	}

	eventName := c.GetHeader(patreon.HeaderEventType)
	if eventName == "" {
		log.Error("event name header is empty")
		c.Status(http.StatusBadRequest)
		return
	}

	pledge := &patreon.WebhookPledge{}
	if err := json.Unmarshal(body, pledge); err != nil {
		log.WithError(err).Error("failed to unmarshal pledge")
		c.JSON(badRequest(err))
		return
	}

	// Pledges are resolved from a fresh membership snapshot on every
	// request, so there is no cached entitlement state to update here.
	log.WithFields(log.Fields{
		"user_id":      pledge.Data.Relationships.Patron.Data.ID,
		"pledge_id":    pledge.Data.ID,
		"pledge_event": eventName,
	}).Info("processed patreon event")

	c.Status(http.StatusOK)
}

func (h handler) contentfulWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if topic := c.GetHeader(contentfulTopicHeader); topic != "ContentManagement.Entry.publish" {
		c.Status(http.StatusNoContent)
		return
	}

	var payload struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(badRequest(err))
		return
	}

	entry, err := h.content.GetEntry(ctx, payload.Sys.ID)
	if err != nil {
		// Don't bounce the webhook, the content store may simply lag behind
		// the publish event.
		log.WithError(err).WithField("entry_id", payload.Sys.ID).Error("failed to fetch published entry")
		c.Status(http.StatusOK)
		return
	}

	if err := h.notify.NotifyNewEntry(ctx, entry); err != nil {
		log.WithError(err).WithField("entry_id", entry.ID).Error("failed to send push notification")
	}

	c.Status(http.StatusOK)
}

// feedCollection resolves a feed id to its collection. The pseudo collection
// ids map directly, everything else goes through the content store.
func (h handler) feedCollection(ctx context.Context, id string) (*model.Collection, error) {
	switch id {
	case model.AllMeditations.ID:
		return model.AllMeditations, nil
	case model.AllLiturgies.ID:
		return model.AllLiturgies, nil
	default:
		return h.content.GetCollection(ctx, id)
	}
}

// feedQuery selects the entries belonging to a feed collection. The pseudo
// collections aggregate every entry of their kind, so they carry no parent
// filter.
func feedQuery(collection *model.Collection) contentful.Query {
	switch collection.Kind {
	case model.KindMeditationCategory:
		q := contentful.Query{ContentType: string(model.KindMeditation)}
		if collection != model.AllMeditations {
			q.Category = collection.ID
		}
		return q

	case model.KindLiturgy:
		q := contentful.Query{ContentType: string(model.KindLiturgyItem)}
		if collection != model.AllLiturgies {
			q.Liturgy = collection.ID
		}
		return q

	default:
		return contentful.Query{
			ContentType: string(model.KindPodcastEpisode),
			Podcast:     collection.ID,
		}
	}
}

// pledgeForSession resolves the caller's session to a Pledge. Anonymous
// callers and expired sessions resolve to a deny by default pledge.
func (h handler) pledgeForSession(ctx context.Context, key string) (*model.Pledge, error) {
	if key == "" {
		return h.pledges.Resolve(ctx, nil)
	}

	credential, err := h.tokens.Get(key)
	if err == token.ErrNotFound {
		return h.pledges.Resolve(ctx, nil)
	} else if err != nil {
		return nil, err
	}

	user, err := h.membership.FetchMembershipSnapshot(ctx, credential)
	if err != nil {
		return nil, err
	}

	return h.pledges.Resolve(ctx, user)
}

func badRequest(err error) (int, interface{}) {
	return http.StatusBadRequest, gin.H{"error": err.Error()}
}

func notFound() (int, interface{}) {
	return http.StatusNotFound, gin.H{"error": model.ErrNotFound.Error()}
}

func internalError(err error) (int, interface{}) {
	log.WithError(err).Error("server error")
	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}
