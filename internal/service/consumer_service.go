package service

import (
	"context"
	"encoding/json"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/pkg/logger"
	"legal-assist-be/internal/pkg/mailer"
	"legal-assist-be/pkg/events"
	pkgNats "legal-assist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event bus: every event is
// forwarded to NATS for downstream consumers, and crisis escalations
// additionally trigger an on-call email alert.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	natsPub      *pkgNats.Publisher
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pkgNats.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		natsPub:      natsPub,
		emailService: emailService,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope dto.EventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("events", "Failed to unmarshal event envelope", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	// Forward to NATS so external consumers (analytics, audit) see the
	// same stream.
	if cs.natsPub != nil {
		event := events.BaseEvent{
			Type:       envelope.EventType,
			Data:       envelope.Payload,
			OccurredAt: envelope.OccurredAt,
		}
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			cs.logger.Error("events", "Failed to forward event to NATS", map[string]interface{}{
				"event_type": envelope.EventType,
				"error":      err.Error(),
			})
			msg.Nack()
			return
		}
	}

	if envelope.EventType == events.TypeCrisisEscalated {
		cs.handleCrisisEscalated(envelope)
	}

	cs.logger.Info("events", "Event processed", map[string]interface{}{"event_type": envelope.EventType})
	msg.Ack()
}

func (cs *consumerService) handleCrisisEscalated(envelope dto.EventEnvelope) {
	sessionID, _ := envelope.Payload["session_id"].(string)
	jurisdiction, _ := envelope.Payload["jurisdiction"].(string)
	resourceCount := 0
	if count, ok := envelope.Payload["resource_count"].(float64); ok {
		resourceCount = int(count)
	}

	if err := cs.emailService.SendCrisisAlert(sessionID, jurisdiction, resourceCount); err != nil {
		cs.logger.Error("events", "Failed to send crisis alert", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}
	cs.logger.Info("events", "Crisis alert dispatched", map[string]interface{}{"session_id": sessionID})
}
