package entity

import (
	"time"

	"persona-assistant-be/pkg/store"
)

// VisitorSession is the durable record of one visitor conversation.
type VisitorSession struct {
	SessionKey string
	Role       string
	History    []store.Turn
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
