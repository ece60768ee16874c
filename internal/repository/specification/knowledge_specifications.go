package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChunkID filters embeddings belonging to one knowledge chunk
type ByChunkID struct {
	ChunkID uuid.UUID
}

func (s ByChunkID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chunk_id = ?", s.ChunkID)
}

// BySource filters knowledge by knowledge-base section
type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}
