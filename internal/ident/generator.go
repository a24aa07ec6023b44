// Package ident produces opaque item identifiers.
package ident

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	SchemeUUID     = "uuid"
	SchemeSequence = "seq"
)

// Generator returns a value distinct from every value it returned before.
type Generator interface {
	Generate() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) Generate() string { return uuid.NewString() }

// SequenceGenerator hands out "<prefix>-1", "<prefix>-2", ...
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequence(prefix string) *SequenceGenerator {
	if strings.TrimSpace(prefix) == "" {
		prefix = "item"
	}
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) Generate() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}

func New(scheme string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeUUID:
		return UUIDGenerator{}, nil
	case SchemeSequence:
		return NewSequence("item"), nil
	default:
		return nil, fmt.Errorf("ident: unknown id scheme %q", scheme)
	}
}
