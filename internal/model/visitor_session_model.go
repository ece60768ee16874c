package model

import (
	"time"

	"gorm.io/datatypes"
)

type VisitorSession struct {
	SessionKey string         `gorm:"type:text;primaryKey"`
	Role       string         `gorm:"type:text;not null"`
	History    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (VisitorSession) TableName() string {
	return "visitor_sessions"
}
