package util

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
)

// InitSentry configures the global Sentry hub. An empty dsn leaves reporting disabled.
func InitSentry(dsn, environment, release string) error {
	if dsn == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          "chiro-directory@" + release,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// CaptureError reports err to Sentry with the given extra context, through the
// request hub carried by ctx when there is one. It is a no-op without a client.
func CaptureError(ctx context.Context, err error, extra map[string]interface{}) {
	hub := sentry.CurrentHub()
	if ctx != nil {
		if reqHub := sentry.GetHubFromContext(ctx); reqHub != nil {
			hub = reqHub
		}
	}
	if hub.Client() == nil || err == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range extra {
			scope.SetExtra(k, v)
		}
		hub.CaptureException(err)
	})
}
