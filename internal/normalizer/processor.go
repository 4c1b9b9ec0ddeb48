// Package normalizer provides functionality for normalizing generated editions into publishable form.
package normalizer

import (
	"fmt"

	"newsrunner/internal/models"
)

// Processor handles edition processing and validation.
type Processor struct {
	transformer *Transformer
	validator   *Validator
}

// NewProcessor creates a new processor instance.
func NewProcessor(rules Rules) *Processor {
	return &Processor{
		transformer: NewTransformer(),
		validator:   NewValidator(rules),
	}
}

// Process transforms a raw edition and validates the result.
func (p *Processor) Process(edition models.Edition) (models.Edition, error) {
	// 1. Clean up the generated articles
	normalized := p.transformer.Transform(edition)

	// 2. Validate completeness and field shape
	if err := p.validator.Validate(normalized); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return normalized, nil
}
