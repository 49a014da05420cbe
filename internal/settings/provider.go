// Package settings supplies the company information block used in
// report headers. Providers are read-only; failures are always
// recoverable by the caller falling back to defaults.
package settings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/APOTEk-Systems/APOTEK-Bakery-sub000/internal/reports"
)

// Provider returns the current company info.
type Provider interface {
	Get(ctx context.Context) (reports.CompanyInfo, error)
}

// SettingsAPI is the subset of the POS client the provider needs.
type SettingsAPI interface {
	Settings(ctx context.Context) (reports.CompanyInfo, error)
}

// APIProvider fetches settings from the POS backend on every call.
type APIProvider struct {
	api SettingsAPI
}

// NewAPIProvider wraps a POS client as a Provider.
func NewAPIProvider(api SettingsAPI) *APIProvider {
	return &APIProvider{api: api}
}

// Get fetches the settings block.
func (p *APIProvider) Get(ctx context.Context) (reports.CompanyInfo, error) {
	return p.api.Settings(ctx)
}

const cacheKey = "bakery:settings:company"

// CachedProvider decorates another provider with a short-lived Redis
// cache. Redis failures degrade to a direct fetch.
type CachedProvider struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
}

// NewCachedProvider builds a cache in front of next.
func NewCachedProvider(next Provider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, client: client, ttl: ttl}
}

// Get returns the cached settings block, populating the cache on miss.
func (p *CachedProvider) Get(ctx context.Context) (reports.CompanyInfo, error) {
	if p.client != nil {
		raw, err := p.client.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var info reports.CompanyInfo
			if err := json.Unmarshal(raw, &info); err == nil {
				return info, nil
			}
		}
	}

	info, err := p.next.Get(ctx)
	if err != nil {
		return reports.CompanyInfo{}, err
	}

	if p.client != nil {
		if raw, err := json.Marshal(info); err == nil {
			// Best effort: a failed cache write must not fail the read.
			_ = p.client.Set(ctx, cacheKey, raw, p.ttl).Err()
		}
	}
	return info, nil
}
