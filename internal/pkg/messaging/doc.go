// Package messaging publishes and consumes broker messages behind one
// interface, so restaurant and rider modules emit registration events and
// receive partner submissions the same way on NATS or Kafka.
package messaging
