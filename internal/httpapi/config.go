package httpapi

import (
	"context"

	"github.com/rs/zerolog"
)

// defaultMaxBodyBytes caps JSON request bodies when Options.MaxBodyBytes is unset.
const defaultMaxBodyBytes int64 = 1 << 20

// Options tunes the HTTP layer. Zero values select defaults.
type Options struct {
	// MaxBodyBytes limits JSON request bodies (default 1 MiB).
	MaxBodyBytes int64
	// CORSOrigins enables CORS for the listed origins; empty disables it.
	CORSOrigins []string
	// Logger receives one line per request. Defaults to a no-op logger.
	Logger *zerolog.Logger
	// BaseContext is canceled on shutdown; long-lived handlers (websockets)
	// stop when it is done. Defaults to Background.
	BaseContext context.Context
}

func (o Options) withDefaults() Options {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBodyBytes
	}
	if o.Logger == nil {
		l := zerolog.Nop()
		o.Logger = &l
	}
	if o.BaseContext == nil {
		o.BaseContext = context.Background()
	}
	return o
}
