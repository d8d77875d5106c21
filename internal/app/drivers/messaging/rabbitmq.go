package messaging

import (
	"halo-optom-service/internal/app/config"
	"log"
	"strconv"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const rabbitMQHeartbeat = 10 * time.Second

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	port, err := strconv.Atoi(driverConfig.RabbitMQ.Port)
	if err != nil {
		log.Fatalf("Invalid rabbitMQ port %q: %s", driverConfig.RabbitMQ.Port, err.Error())
	}

	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    driverConfig.RabbitMQ.VirtualHost,
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("halo-optom-service")

	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Heartbeat:  rabbitMQHeartbeat,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ at %s:%d", uri.Host, uri.Port)
	return conn
}
