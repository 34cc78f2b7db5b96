// Package messaging publishes domain events to a broker. Drivers: NATS and a
// noop publisher for deployments without a broker.
package messaging
