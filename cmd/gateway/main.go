package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/mxpv/patreon-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/stillpointfm/gateway/pkg/config"
	"github.com/stillpointfm/gateway/pkg/contentful"
	"github.com/stillpointfm/gateway/pkg/handler"
	"github.com/stillpointfm/gateway/pkg/notify"
	"github.com/stillpointfm/gateway/pkg/patron"
	"github.com/stillpointfm/gateway/pkg/pledge"
	"github.com/stillpointfm/gateway/pkg/token"
)

type Opts struct {
	ConfigPath string `long:"config" short:"c" default:"config.toml" env:"GATEWAY_CONFIG_PATH"`
	Debug      bool   `long:"debug" env:"DEBUG"`
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := Opts{}
	if _, err := flags.Parse(&opts); err != nil {
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running gateway")

	log.Debugf("loading configuration %q", opts.ConfigPath)
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	// Core services

	content := contentful.NewClient(contentful.Opts{
		Space:        cfg.Contentful.Space,
		AccessToken:  cfg.Contentful.AccessToken,
		Environment:  cfg.Contentful.Environment,
		BonusEntryID: cfg.Contentful.BonusEntryID,
	})

	tokens, err := token.NewStore(cfg.Redis.URL)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize token store")
	}

	pledges := pledge.NewResolver(content, cfg.Patreon.CreatorID)

	membership := patron.NewClient(oauth2.Config{
		ClientID:     cfg.Patreon.ClientID,
		ClientSecret: cfg.Patreon.ClientSecret,
		RedirectURL:  cfg.Patreon.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  patreon.AuthorizationURL,
			TokenURL: patreon.AccessTokenURL,
		},
	})

	pusher := notify.New(notify.Opts{
		AppID:  cfg.Push.AppID,
		APIKey: cfg.Push.APIKey,
	})

	web := handler.New(content, pledges, membership, tokens, pusher, handler.Opts{
		CookieSecret:          cfg.Server.CookieSecret,
		Hostname:              cfg.Server.Hostname,
		PatreonClientID:       cfg.Patreon.ClientID,
		PatreonSecret:         cfg.Patreon.ClientSecret,
		PatreonRedirectURL:    cfg.Patreon.RedirectURL,
		PatreonWebhooksSecret: cfg.Patreon.WebhookSecret,
	})

	srv := http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: web,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Infof("running listener at %s", srv.Addr)
		return srv.ListenAndServe()
	})

	group.Go(func() error {
		defer func() {
			log.Info("shutting down web server")
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Error("server shutdown failed")
			}

			if err := tokens.Close(); err != nil {
				log.WithError(err).Error("failed to close token store")
			}
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			cancel()
			return nil
		}
	})

	if err := group.Wait(); err != nil && err != context.Canceled && err != http.ErrServerClosed {
		log.WithError(err).Error("wait error")
	}

	log.Info("gracefully stopped")
}
