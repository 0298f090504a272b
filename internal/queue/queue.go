package queue

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"

	"github.com/open-dossier/archive/backend/internal/util"
	"github.com/open-dossier/archive/backend/pkg/logger"
)

// Init connects to RabbitMQ using the environment configuration. The
// ingestion pipeline publishes change events here; this service only
// consumes them.
func Init() *amqp091.Connection {
	user := util.GetEnv("RABBITMQ_USER")
	pass := util.GetEnv("RABBITMQ_PASSWORD")
	host := util.GetEnv("RABBITMQ_HOST")
	port := util.GetEnv("RABBITMQ_PORT")

	connURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		user,
		pass,
		host,
		port,
	)

	conn, err := amqp091.Dial(connURL)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", "err", err)
	}

	return conn
}

// SetupQueue declares the change-event queue durably so events published
// while this service is down are delivered once it returns.
func SetupQueue(ch *amqp091.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return err
	}
	return nil
}
