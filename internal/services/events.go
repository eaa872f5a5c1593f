package services

import "log"

// EventPublisher pushes catalog lifecycle events (shop.created,
// product.updated, ...) to the message broker.
type EventPublisher interface {
	PublishCatalogEvent(event string, payload map[string]interface{}) error
}

// publishEvent publishes best-effort: a broker outage must never fail the
// write that already committed.
func publishEvent(p EventPublisher, event string, payload map[string]interface{}) {
	if p == nil {
		return
	}
	if err := p.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
