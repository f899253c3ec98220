package service

import (
	"encoding/json"
	"log"

	"legal-assist-be/internal/dto"
	"legal-assist-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IEventPublisherService interface {
	Publish(event events.Event)
}

type eventPublisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewEventPublisherService(topicName string, pubSub *gochannel.GoChannel) IEventPublisherService {
	return &eventPublisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

// Publish puts the event on the in-process bus. Publishing is
// best-effort: a turn never fails because observability did.
func (ps *eventPublisherService) Publish(event events.Event) {
	envelope := dto.EventEnvelope{
		EventType:  event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal event %s: %v", event.EventType(), err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		log.Printf("[ERROR] Failed to publish event %s: %v", event.EventType(), err)
	}
}
