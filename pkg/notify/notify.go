package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/stillpointfm/gateway/pkg/model"
)

const (
	defaultURL     = "https://onesignal.com/api/v1/notifications"
	defaultTimeout = 15 * time.Second
)

// Notifier posts new content announcements to the push gateway. The handle
// is constructed and owned by the caller and passed in explicitly, it is
// never cached process wide.
type Notifier struct {
	client *http.Client
	url    string
	appID  string
	apiKey string
}

type Opts struct {
	AppID  string
	APIKey string
	// URL overrides the push gateway endpoint, used in tests.
	URL    string
	Client *http.Client
}

func New(opts Opts) *Notifier {
	n := &Notifier{
		client: opts.Client,
		url:    opts.URL,
		appID:  opts.AppID,
		apiKey: opts.APIKey,
	}

	if n.client == nil {
		n.client = &http.Client{Timeout: defaultTimeout}
	}

	if n.url == "" {
		n.url = defaultURL
	}

	return n
}

type notification struct {
	AppID            string            `json:"app_id"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	Data             map[string]string `json:"data"`
	IncludedSegments []string          `json:"included_segments"`
}

// NotifyNewEntry announces a freshly published entry to all subscribed
// devices.
func (n *Notifier) NotifyNewEntry(ctx context.Context, entry *model.Entry) error {
	msg := notification{
		AppID:            n.appID,
		Headings:         map[string]string{"en": "New content available"},
		Contents:         map[string]string{"en": entry.Fields.Title},
		Data:             map[string]string{"entryId": entry.ID, "kind": string(entry.Kind)},
		IncludedSegments: []string{"All"},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to serialize notification")
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create notification request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+n.apiKey)

	resp, err := n.client.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "notification request failed")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("push gateway responded with %d", resp.StatusCode)
	}

	return nil
}
