package classify

import (
	"context"
	"log/slog"
)

// fallbackClassifier tries the primary classifier and degrades to the
// fallback on any error. Ingestion must never fail because the LLM is
// down, so the service layer always receives a classifier wrapped this
// way with the rule table as fallback.
type fallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

func WithFallback(primary, fallback Classifier) Classifier {
	return &fallbackClassifier{primary: primary, fallback: fallback}
}

func (c *fallbackClassifier) Classify(ctx context.Context, message, phone string) (Categorization, error) {
	result, err := c.primary.Classify(ctx, message, phone)
	if err == nil {
		return result, nil
	}

	slog.WarnContext(ctx, "primary classifier failed, falling back",
		"phone", phone,
		"error", err)

	return c.fallback.Classify(ctx, message, phone)
}
