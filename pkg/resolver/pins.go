// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolver

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/NVIDIA/serializer-registry/pkg/apiversion"
	"github.com/NVIDIA/serializer-registry/pkg/defaults"
)

// PinStore remembers which version a credential was first given.
type PinStore interface {
	Get(ctx context.Context, cred Credential) (apiversion.Version, bool, error)
	Pin(ctx context.Context, cred Credential, v apiversion.Version) error
}

// MemoryPinStore is a PinStore that keeps pins in process memory. Pins
// expire after their TTL and the least recently used pin is evicted when the
// store is full; reads refresh the TTL.
type MemoryPinStore struct {
	cache *ttlcache.Cache[string, apiversion.Version]
}

// PinStoreOption configures a MemoryPinStore.
type PinStoreOption func(*pinStoreConfig)

type pinStoreConfig struct {
	ttl      time.Duration
	capacity uint64
}

// WithPinTTL overrides defaults.PinTTL.
func WithPinTTL(ttl time.Duration) PinStoreOption {
	return func(c *pinStoreConfig) {
		c.ttl = ttl
	}
}

// WithPinCapacity overrides defaults.PinCapacity.
func WithPinCapacity(n uint64) PinStoreOption {
	return func(c *pinStoreConfig) {
		c.capacity = n
	}
}

// NewMemoryPinStore returns an empty store. Expired entries are dropped
// lazily on access; call Start to also purge them in the background.
func NewMemoryPinStore(opts ...PinStoreOption) *MemoryPinStore {
	cfg := &pinStoreConfig{
		ttl:      defaults.PinTTL,
		capacity: defaults.PinCapacity,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &MemoryPinStore{
		cache: ttlcache.New[string, apiversion.Version](
			ttlcache.WithTTL[string, apiversion.Version](cfg.ttl),
			ttlcache.WithCapacity[string, apiversion.Version](cfg.capacity),
		),
	}
}

// Get implements PinStore.
func (s *MemoryPinStore) Get(_ context.Context, cred Credential) (apiversion.Version, bool, error) {
	item := s.cache.Get(cred.ID)
	if item == nil {
		return "", false, nil
	}
	return item.Value(), true, nil
}

// Pin implements PinStore.
func (s *MemoryPinStore) Pin(_ context.Context, cred Credential, v apiversion.Version) error {
	s.cache.Set(cred.ID, v, ttlcache.DefaultTTL)
	return nil
}

// Len returns the number of stored pins, including expired ones not yet purged.
func (s *MemoryPinStore) Len() int {
	return s.cache.Len()
}

// Start purges expired pins until ctx is done. It blocks.
func (s *MemoryPinStore) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.cache.Stop()
	}()
	s.cache.Start()
}
