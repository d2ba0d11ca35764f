package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache stores raw remote payloads. Concurrent writers to the same key may
// race; last write wins, which is fine because payloads for one key are
// idempotent.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Memory is an in-process cache backed by an expirable LRU. Entries expire
// after the TTL given at construction.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	return m.lru.Get(key)
}

func (m *Memory) Set(key string, value []byte) {
	m.lru.Add(key, value)
}
