// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-parish/internal/adapter"
	"github.com/MKhiriev/go-parish/internal/logger"
	"github.com/MKhiriev/go-parish/internal/store"
	"github.com/MKhiriev/go-parish/internal/utils"
	"github.com/MKhiriev/go-parish/models"
)

const (
	cacheKeyVisitorID         = "visitor.id"
	cacheKeyVisitorProfile    = "visitor.profile"
	cacheKeyVisitorRegistered = "visitor.registered"
	cacheKeyProfilePending    = "visitor.profile.pending"
)

type visitorProfile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type clientIdentityService struct {
	cache   store.IdentityCache
	adapter adapter.ServerAdapter
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger

	// mu serializes provisioning so concurrent first uses agree on one ID.
	mu sync.Mutex
}

func NewClientIdentityService(cache store.IdentityCache, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientIdentityService {
	return &clientIdentityService{
		cache:   cache,
		adapter: serverAdapter,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (c *clientIdentityService) VisitorID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visitorID(ctx)
}

func (c *clientIdentityService) visitorID(ctx context.Context) (string, error) {
	id, err := c.cache.Get(ctx, cacheKeyVisitorID)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, store.ErrCacheMiss) {
		return "", fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}

	id = c.uuid.Generate()
	if err = c.cache.Set(ctx, cacheKeyVisitorID, id); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}

	c.logger.Info().Str("visitor_id", id).Msg("visitor identity created")
	return id, nil
}

// Visitor persists the identity before any network call, so a failed
// registration never changes the ID.
func (c *clientIdentityService) Visitor(ctx context.Context) (models.Visitor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := c.visitorID(ctx)
	if err != nil {
		return models.Visitor{}, err
	}

	profile := c.profile(ctx)
	v := models.Visitor{ID: id, Name: profile.Name, Email: profile.Email}

	if registered, _ := c.cache.Get(ctx, cacheKeyVisitorRegistered); registered == "true" {
		if pending, _ := c.cache.Get(ctx, cacheKeyProfilePending); pending == "true" {
			if err = c.pushProfile(ctx, v); err != nil {
				c.logger.Warn().Err(err).Str("func", "clientIdentityService.Visitor").Str("visitor_id", id).Msg("profile update failed, will retry")
			}
		}
		return v, nil
	}

	stored, err := c.adapter.RegisterVisitor(ctx, v)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "clientIdentityService.Visitor").Str("visitor_id", id).Msg("visitor registration failed, will retry")
		return v, nil
	}

	if err = c.cache.Set(ctx, cacheKeyVisitorRegistered, "true"); err != nil {
		c.logger.Warn().Err(err).Str("func", "clientIdentityService.Visitor").Msg("failed to remember registration")
	}
	c.logger.Info().Str("visitor_id", id).Msg("visitor registered")

	stored.ID = id
	return stored, nil
}

func (c *clientIdentityService) UpdateProfile(ctx context.Context, name, email string) (models.Visitor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := c.visitorID(ctx)
	if err != nil {
		return models.Visitor{}, err
	}

	raw, err := json.Marshal(visitorProfile{Name: name, Email: email})
	if err != nil {
		return models.Visitor{}, fmt.Errorf("encode visitor profile: %w", err)
	}
	if err = c.cache.Set(ctx, cacheKeyVisitorProfile, string(raw)); err != nil {
		return models.Visitor{}, fmt.Errorf("save visitor profile: %w", err)
	}

	v := models.Visitor{ID: id, Name: name, Email: email}

	// an unregistered visitor sends the profile with its registration
	if registered, _ := c.cache.Get(ctx, cacheKeyVisitorRegistered); registered != "true" {
		return v, nil
	}

	if err = c.cache.Set(ctx, cacheKeyProfilePending, "true"); err != nil {
		return models.Visitor{}, fmt.Errorf("save visitor profile: %w", err)
	}
	if err = c.pushProfile(ctx, v); err != nil {
		c.logger.Warn().Err(err).Str("func", "clientIdentityService.UpdateProfile").Str("visitor_id", id).Msg("profile update failed, will retry")
		return v, fmt.Errorf("%w: %w", ErrProfileNotSynced, err)
	}
	return v, nil
}

// pushProfile sends v to the server and clears the pending flag on success.
func (c *clientIdentityService) pushProfile(ctx context.Context, v models.Visitor) error {
	if _, err := c.adapter.UpdateVisitor(ctx, v); err != nil {
		return err
	}
	if err := c.cache.Set(ctx, cacheKeyProfilePending, "false"); err != nil {
		c.logger.Warn().Err(err).Str("func", "clientIdentityService.pushProfile").Msg("failed to clear pending profile flag")
	}
	c.logger.Info().Str("visitor_id", v.ID).Msg("visitor profile updated")
	return nil
}

// profile returns the cached profile; a missing or corrupt entry is empty.
func (c *clientIdentityService) profile(ctx context.Context) visitorProfile {
	var p visitorProfile

	raw, err := c.cache.Get(ctx, cacheKeyVisitorProfile)
	if err != nil {
		return p
	}
	if err = json.Unmarshal([]byte(raw), &p); err != nil {
		c.logger.Warn().Err(err).Msg("cached visitor profile is corrupt, ignoring it")
		return visitorProfile{}
	}
	return p
}
