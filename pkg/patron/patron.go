package patron

import (
	"context"

	"github.com/mxpv/patreon-go"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Client fetches membership snapshots from Patreon on behalf of a logged in
// user.
type Client struct {
	oauth oauth2.Config
}

func NewClient(oauth oauth2.Config) *Client {
	return &Client{oauth: oauth}
}

// FetchMembershipSnapshot returns the user's profile with pledges included,
// or nil when no credential is provided. Upstream failures are propagated
// unmodified, the caller decides whether to retry with a refreshed
// credential.
func (c *Client) FetchMembershipSnapshot(ctx context.Context, credential *oauth2.Token) (*patreon.UserResponse, error) {
	if credential == nil {
		return nil, nil
	}

	tc := c.oauth.Client(ctx, credential)
	client := patreon.NewClient(tc)

	user, err := client.FetchUser(patreon.WithIncludes("pledges"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user from patreon")
	}

	return user, nil
}
