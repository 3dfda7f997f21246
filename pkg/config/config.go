package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type Server struct {
	// Hostname to use for feed and entry links
	Hostname string `toml:"hostname"`
	// Port is a server port to listen to
	Port int `toml:"port"`
	// CookieSecret signs the session cookies
	CookieSecret string `toml:"cookie_secret"`
}

type Patreon struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURL  string `toml:"redirect_url"`
	// CreatorID identifies this service's campaign, pledges to other
	// campaigns are ignored
	CreatorID string `toml:"creator_id"`
	// WebhookSecret verifies pledge event signatures
	WebhookSecret string `toml:"webhook_secret"`
}

type Contentful struct {
	Space       string `toml:"space"`
	AccessToken string `toml:"access_token"`
	Environment string `toml:"environment"`
	// BonusEntryID points at the entry holding the shared bonus resource secret
	BonusEntryID string `toml:"bonus_entry_id"`
}

type Redis struct {
	URL string `toml:"url"`
}

type Push struct {
	AppID  string `toml:"app_id"`
	APIKey string `toml:"api_key"`
}

type Config struct {
	Server     Server     `toml:"server"`
	Patreon    Patreon    `toml:"patreon"`
	Contentful Contentful `toml:"contentful"`
	Redis      Redis      `toml:"redis"`
	Push       Push       `toml:"push"`
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	config := Config{}

	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config file")
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.Server.CookieSecret == "" {
		result = multierror.Append(result, errors.New("cookie secret is required"))
	}

	if c.Patreon.ClientID == "" || c.Patreon.ClientSecret == "" {
		result = multierror.Append(result, errors.New("patreon client credentials are required"))
	}

	if c.Patreon.CreatorID == "" {
		result = multierror.Append(result, errors.New("patreon creator id is required"))
	}

	if c.Contentful.Space == "" || c.Contentful.AccessToken == "" {
		result = multierror.Append(result, errors.New("contentful space and access token are required"))
	}

	if c.Redis.URL == "" {
		result = multierror.Append(result, errors.New("redis url is required"))
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	if c.Server.Hostname == "" {
		if c.Server.Port != 80 {
			c.Server.Hostname = fmt.Sprintf("http://localhost:%d", c.Server.Port)
		} else {
			c.Server.Hostname = "http://localhost"
		}
	}

	if c.Contentful.Environment == "" {
		c.Contentful.Environment = "master"
	}
}
