package service

import (
	"context"
	"encoding/json"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/pkg/logger"
	"project-collab-be/internal/repository/unitofwork"
	"project-collab-be/pkg/events"
	pktNats "project-collab-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event channel: every domain event
// becomes an activity row, and events are relayed to NATS for external
// subscribers when a connection is available.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pktNats.Publisher
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		natsPub:    natsPub,
		logger:     log,
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
	var payload eventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages so they are not redelivered forever.
		msg.Ack()
		return
	}

	activity := &entity.Activity{
		TypeCode: payload.Type,
		Metadata: payload.Payload,
	}
	if actor, ok := payload.Payload["actorId"].(string); ok {
		if id, err := uuid.Parse(actor); err == nil {
			activity.ActorId = id
		}
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		cs.logger.Error("Consumer", "Failed to record activity", map[string]interface{}{
			"type":  payload.Type,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	if cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, events.New(payload.Type, payload.Payload)); err != nil {
			// Activity row is already stored; NATS relay is best effort.
			cs.logger.Warn("Consumer", "NATS relay failed", map[string]interface{}{
				"type":  payload.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
