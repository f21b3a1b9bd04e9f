package messaging

import (
	"fmt"
	"log"

	"railpay-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ opens the connection carrying the webhook event queue. Queue
// and channel setup happens later in the webhookqueue service; this only
// dials.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	amqpURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	conn, err := amqp091.Dial(amqpURL)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitmq: %s", err.Error())
	}

	log.Println("Successfully connected to rabbitmq")
	return conn
}
