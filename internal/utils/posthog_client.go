package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// PosthogClientWrapper wraps posthog.Client so callers never have to care
// whether analytics is configured. A zero wrapper drops every event.
type PosthogClientWrapper struct {
	client posthog.Client
	logger *slog.Logger
}

// InitializePosthogClient builds the analytics client. An empty API key
// yields a no-op wrapper.
func InitializePosthogClient(apiKey string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Warn("PostHog API key not set, analytics disabled")
		return &PosthogClientWrapper{}
	}

	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Error("Failed to initialize PostHog client", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	return &PosthogClientWrapper{client: client, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w.client != nil
}

// Enqueue captures an event for the given user. Silently a no-op when
// analytics is disabled.
func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if w.client == nil {
		return
	}
	if err := w.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (w *PosthogClientWrapper) Close() {
	if w.client != nil {
		w.client.Close()
	}
}
