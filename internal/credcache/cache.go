// Package credcache caches assumed-role STS credentials in Redis, keyed
// by workspace id, so a scheduler tick that revisits a workspace within
// the credential's lifetime can skip a redundant AssumeRole call.
package credcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-redis/redis/v8"
)

// keyPrefix namespaces every credential key this cache writes.
const keyPrefix = "finops:credcache:"

// Credentials is the cached shape of one workspace's assumed-role
// session.
type Credentials struct {
	AccessKeyID     string    `json:"access_key_id"`
	SecretAccessKey string    `json:"secret_access_key"`
	SessionToken    string    `json:"session_token"`
	Expires         time.Time `json:"expires"`
}

// Cache is a thin Redis-backed TTL store. A single record per key,
// protected by Redis's own atomicity, is enough: this package makes no
// initialize-once claim itself, that discipline lives in the client that
// calls Set once per AssumeRole.
type Cache struct {
	client *redis.Client
}

// New wraps an existing Redis client. Callers share one *redis.Client
// across workspaces; the cache itself never mixes workspace data because
// every key is scoped by workspace id.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func key(workspaceID string) string {
	return keyPrefix + workspaceID
}

// Set stores credentials with a TTL derived from their own expiry. A
// credential that has already expired is not stored.
func (c *Cache) Set(ctx context.Context, workspaceID string, creds Credentials) error {
	ttl := time.Until(creds.Expires)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if err := c.client.Set(ctx, key(workspaceID), data, ttl).Err(); err != nil {
		return fmt.Errorf("set credentials: %w", err)
	}
	return nil
}

// Get returns the cached credentials for a workspace, or (nil, nil) on a
// cache miss (including natural TTL expiry).
func (c *Cache) Get(ctx context.Context, workspaceID string) (*Credentials, error) {
	data, err := c.client.Get(ctx, key(workspaceID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("unmarshal credentials: %w", err)
	}
	return &creds, nil
}

// Invalidate removes a workspace's cached credentials.
func (c *Cache) Invalidate(ctx context.Context, workspaceID string) error {
	return c.client.Del(ctx, key(workspaceID)).Err()
}

// CachingProvider wraps an underlying aws.CredentialsProvider (normally an
// stscreds.AssumeRoleProvider) with this cache, so a new client built for
// a workspace that already has a live assumed-role session skips a
// redundant AssumeRole call.
type CachingProvider struct {
	cache       *Cache
	workspaceID string
	underlying  aws.CredentialsProvider
}

// WrapProvider builds a CachingProvider for one workspace's AssumeRole
// provider.
func (c *Cache) WrapProvider(workspaceID string, underlying aws.CredentialsProvider) *CachingProvider {
	return &CachingProvider{cache: c, workspaceID: workspaceID, underlying: underlying}
}

// Retrieve satisfies aws.CredentialsProvider. It serves a cached, unexpired
// credential when one exists and otherwise falls through to the underlying
// provider, caching whatever it returns.
func (p *CachingProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	if cached, err := p.cache.Get(ctx, p.workspaceID); err == nil && cached != nil && time.Now().Before(cached.Expires) {
		return aws.Credentials{
			AccessKeyID:     cached.AccessKeyID,
			SecretAccessKey: cached.SecretAccessKey,
			SessionToken:    cached.SessionToken,
			CanExpire:       true,
			Expires:         cached.Expires,
		}, nil
	}

	creds, err := p.underlying.Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}

	// Best-effort: a failed cache write still returns the live credentials.
	_ = p.cache.Set(ctx, p.workspaceID, Credentials{
		AccessKeyID:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
		SessionToken:    creds.SessionToken,
		Expires:         creds.Expires,
	})
	return creds, nil
}
