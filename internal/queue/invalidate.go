package queue

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"github.com/open-dossier/archive/backend/pkg/cache"
	"github.com/open-dossier/archive/backend/pkg/logger"
)

// ConsumeInvalidations clears the response cache whenever the ingestion
// pipeline reports a change to entities, relationships, mentions, or
// documents. Clearing the whole cache on any write is the deliberately
// coarse strategy: always correct, and cheap at this cache's size.
// Per-endpoint surgical invalidation would be an optimization only.
func ConsumeInvalidations(
	ctx context.Context,
	ch *amqp091.Channel,
	queueName string,
	respCache *cache.Cache,
) error {
	deliveries, err := ch.Consume(
		queueName,
		"",    // consumer tag
		true,  // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					logger.Warn("Invalidation channel closed, cache will serve stale entries until TTL")
					return
				}
				respCache.Clear()
				logger.Debug("Cache cleared on change event", "routing_key", d.RoutingKey)
			}
		}
	}()

	return nil
}
