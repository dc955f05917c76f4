package redisclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrTokenNotFound indicates the bearer token is unknown or expired.
var ErrTokenNotFound = errors.New("token not found")

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// StoreToken maps a bearer token to a user id with a TTL. Tokens are
// provisioned by the authentication service; this service only needs to
// write them in tests and ops tooling.
func (c *Client) StoreToken(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	return c.rdb.Set(ctx, tokenKey(token), userID, ttl).Err()
}

// ResolveToken returns the user id behind a bearer token
func (c *Client) ResolveToken(ctx context.Context, token string) (int64, error) {
	val, err := c.rdb.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrTokenNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve token: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt token entry: %w", err)
	}
	return userID, nil
}

// TouchToken extends a token's TTL (sliding expiry on each
// authenticated request)
func (c *Client) TouchToken(ctx context.Context, token string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, tokenKey(token), ttl).Err()
}

// RevokeToken removes a bearer token
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, tokenKey(token)).Err()
}

func tokenKey(token string) string {
	return fmt.Sprintf("auth:token:%s", token)
}
