package service

import (
	"context"

	"persona-assistant-be/internal/pkg/logger"
	"persona-assistant-be/pkg/events"
	pktNats "persona-assistant-be/pkg/nats"
)

// IActivityService tails the NATS event stream and records every assistant
// event into the isolated activity log, keeping an auditable trail without
// polluting the main application log.
type IActivityService interface {
	Start() error
}

type activityService struct {
	subscriber *pktNats.Subscriber
	actLogger  logger.ILogger
}

func NewActivityService(subscriber *pktNats.Subscriber, actLogger logger.ILogger) IActivityService {
	return &activityService{
		subscriber: subscriber,
		actLogger:  actLogger,
	}
}

func (s *activityService) Start() error {
	return s.subscriber.Subscribe("assistant.>", "assistant-activity", func(ctx context.Context, event events.Event) error {
		s.actLogger.Info("Activity", event.EventType(), event.Payload())
		return nil
	})
}
