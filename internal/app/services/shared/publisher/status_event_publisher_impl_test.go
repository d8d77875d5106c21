package publisher

import (
	"context"
	"errors"
	"halo-optom-service/internal/app/models"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	queue     string
	published []amqp091.Publishing
	err       error
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.queue = key
	c.published = append(c.published, msg)
	return nil
}

func TestStatusEventPublisher_PublishStatusEvent(t *testing.T) {
	event := &models.StatusEvent{
		Event:      "payment.verified",
		EntityType: constvars.EntityTypePayment,
		EntityID:   "p-1",
		Status:     "verified",
		ActorID:    "A1",
		OccurredAt: time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("Persistent JSON Message", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := &statusEventPublisher{Channel: channel, Queue: "halo.status-events"}

		require.NoError(t, publisher.PublishStatusEvent(context.Background(), event))

		require.Len(t, channel.published, 1)
		message := channel.published[0]
		assert.Equal(t, "halo.status-events", channel.queue)
		assert.Equal(t, amqp091.Persistent, message.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, message.ContentType)
		assert.Equal(t, "payment.verified", message.Type)

		var decoded models.StatusEvent
		require.NoError(t, json.Unmarshal(message.Body, &decoded))
		assert.Equal(t, "p-1", decoded.EntityID)
		assert.Equal(t, "verified", decoded.Status)
	})

	t.Run("Broker Failure", func(t *testing.T) {
		publisher := &statusEventPublisher{Channel: &fakeChannel{err: amqp091.ErrClosed}, Queue: "halo.status-events"}

		err := publisher.PublishStatusEvent(context.Background(), event)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
		assert.True(t, errors.Is(err, amqp091.ErrClosed))
	})
}
