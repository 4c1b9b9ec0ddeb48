// Package generator produces portal editions through a content provider.
package generator

import (
	"context"
	"errors"

	"newsrunner/internal/models"
)

// Provider errors.
var (
	ErrMissingAPIKey     = errors.New("provider API key is not set")
	ErrEmptyResponse     = errors.New("provider returned no articles")
	ErrMalformedResponse = errors.New("provider returned malformed article JSON")
)

// Provider generates articles for one region/category pair.
type Provider interface {
	// Generate returns count articles for the pair. Implementations must
	// honor ctx cancellation.
	Generate(ctx context.Context, region models.Region, category string, count int) ([]models.Article, error)

	// Name identifies the provider in logs and run records.
	Name() string

	// Close releases any underlying resources.
	Close() error
}
