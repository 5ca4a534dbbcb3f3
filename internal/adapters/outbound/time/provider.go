package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
// With UTC set the monotonic clock reading is dropped, so elapsed times follow the wall clock.
type CurrentTimeProvider struct {
	UTC bool
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	now := time.Now()
	if ts.UTC {
		return now.UTC()
	}
	return now
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	UTC bool `config:"TIME_UTC" default:"true"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{UTC: its.UTC})
	return ctx, nil
}
