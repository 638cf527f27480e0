package store

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers for new records. Identifiers must be
// unique within the store; their format is opaque to everything else.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator issues predictable identifiers such as "id-1", "id-2".
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, g.next)
}
