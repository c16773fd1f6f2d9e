package sheets

import (
	"context"
	"fmt"

	"github.com/danvolchok/budget-tracker-web/internal/config"
)

// NewStore constructs the configured backend.
func NewStore(ctx context.Context, cfg config.SheetsConfig) (Store, error) {
	switch cfg.Backend {
	case config.SheetsBackendGoogle:
		return NewGoogleStore(ctx, cfg)
	case config.SheetsBackendProxy:
		return NewProxyStore(cfg), nil
	default:
		return nil, fmt.Errorf("unknown sheets backend %q", cfg.Backend)
	}
}
