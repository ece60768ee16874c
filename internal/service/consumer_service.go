package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"persona-assistant-be/internal/constant"
	"persona-assistant-be/internal/dto"
	"persona-assistant-be/internal/entity"
	"persona-assistant-be/internal/repository/specification"
	"persona-assistant-be/internal/repository/unitofwork"
	"persona-assistant-be/pkg/embedding"
	"persona-assistant-be/pkg/events"
	pktNats "persona-assistant-be/pkg/nats"
	"persona-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService re-indexes a knowledge chunk whenever its content changes:
// split, embed per slice, replace old embeddings transactionally.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
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
	var payload dto.PublishEmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // malformed messages would retry forever
		return
	}

	log.Printf("[INFO] Indexing knowledge chunk %s", payload.ChunkId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chunk, err := uow.KnowledgeChunkRepository().FindOne(ctx, specification.ByID{ID: payload.ChunkId})
	if err != nil {
		log.Printf("[ERROR] Failed to load chunk %s: %v", payload.ChunkId, err)
		msg.Nack()
		return
	}
	if chunk == nil {
		log.Printf("[WARN] Chunk %s no longer exists, skipping", payload.ChunkId)
		msg.Ack()
		return
	}

	content := fmt.Sprintf("Section: %s\nTitle: %s\n\n%s", chunk.Source, chunk.Title, chunk.Content)

	slices := utils.SplitText(content, constant.ChunkSize, constant.ChunkOverlap)
	log.Printf("[INFO] Chunk %s split into %d slices", chunk.Id, len(slices))

	var newEmbeddings []*entity.KnowledgeEmbedding
	for i, slice := range slices {
		res, err := cs.embeddingProvider.Generate(slice, constant.TaskTypeRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to embed slice %d of chunk %s: %v", i, chunk.Id, err)
			msg.Nack()
			return
		}
		newEmbeddings = append(newEmbeddings, &entity.KnowledgeEmbedding{
			Id:             uuid.New(),
			Document:       slice,
			Source:         chunk.Source,
			EmbeddingValue: res.Embedding.Values,
			ChunkId:        chunk.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByChunkId(ctx, chunk.Id); err != nil {
		log.Printf("[ERROR] Failed to delete stale embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.KnowledgeEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to persist embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.NewKnowledgeIndexed(chunk.Id.String(), chunk.Source, len(newEmbeddings))
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", events.TypeKnowledgeIndexed, err)
		}
	}

	log.Printf("[SUCCESS] Chunk %s indexed with %d slices", chunk.Id, len(newEmbeddings))
	msg.Ack()
}
