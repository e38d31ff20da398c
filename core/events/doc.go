// Package events publishes consumption state changes to NATS.
//
// Publishing is optional: without events.nats_url the service runs with a Noop publisher.
// Consumers subscribe to events.subject (default "content.state.updated").
package events
