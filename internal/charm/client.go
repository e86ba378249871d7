// ABOUTME: Charm KV backend keeping each namespace blob under one cloud-synced key
// ABOUTME: Also exposes sync, reset, and account key management for the sync commands
package charm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"

	ckv "github.com/harper/carenotes/internal/kv"
	"github.com/harper/carenotes/internal/util"
)

// NamespacePrefix marks keys that hold namespace blobs
const NamespacePrefix = "ns:"

// Config holds charm client configuration
type Config struct {
	Host        string
	DBName      string
	AutoSync    bool
	SyncRetries int
	Logger      *log.Logger
}

// DefaultConfig returns default configuration for charm client
func DefaultConfig() *Config {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = "cloud.charm.sh"
	}
	return &Config{
		Host:        host,
		DBName:      "carenotes",
		AutoSync:    true,
		SyncRetries: 3,
	}
}

// Client wraps charm KV as a namespace backend
type Client struct {
	kv     *kv.KV
	config *Config
	logger *log.Logger
	mu     sync.Mutex
}

var _ ckv.Backend = (*Client)(nil)

// NewClient creates a new charm client with the given config
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	// CHARM_HOST must be set before opening KV
	os.Setenv("CHARM_HOST", cfg.Host)

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	c := &Client{
		kv:     db,
		config: cfg,
		logger: logger.With("backend", "charm", "db", cfg.DBName),
	}

	// Pull remote data on startup
	if cfg.AutoSync {
		if err := db.Sync(); err != nil {
			c.logger.Warn("initial sync failed, continuing with local data", "err", err)
		}
	}

	return c, nil
}

// Close closes the KV database
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

// NamespaceKey returns the KV key holding a namespace blob
func NamespaceKey(namespace string) string {
	return NamespacePrefix + namespace
}

// syncIfEnabled pushes to the cloud after writes
func (c *Client) syncIfEnabled() {
	if c.config.AutoSync {
		if err := c.kv.Sync(); err != nil {
			c.logger.Warn("sync after write failed", "err", err)
		}
	}
}

// Read returns the blob stored under the namespace key, or kv.ErrNotFound
func (c *Client) Read(namespace string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv == nil {
		return nil, fmt.Errorf("charm client is closed")
	}
	data, err := c.kv.Get([]byte(NamespaceKey(namespace)))
	if errors.Is(err, badger.ErrKeyNotFound) || (err == nil && data == nil) {
		return nil, ckv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get namespace %s: %w", namespace, err)
	}
	return data, nil
}

// Write stores the blob and syncs when AutoSync is on
func (c *Client) Write(namespace string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv == nil {
		return fmt.Errorf("charm client is closed")
	}
	if err := c.kv.Set([]byte(NamespaceKey(namespace)), data); err != nil {
		return fmt.Errorf("failed to set namespace %s: %w", namespace, err)
	}
	c.syncIfEnabled()
	return nil
}

// Delete removes the namespace key and syncs when AutoSync is on
func (c *Client) Delete(namespace string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv == nil {
		return fmt.Errorf("charm client is closed")
	}
	err := c.kv.Delete([]byte(NamespaceKey(namespace)))
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete namespace %s: %w", namespace, err)
	}
	c.syncIfEnabled()
	return nil
}

// Namespaces lists the namespaces stored in this database
func (c *Client) Namespaces() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var result []string
	for _, key := range keys {
		if name, ok := strings.CutPrefix(string(key), NamespacePrefix); ok {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

// Sync manually triggers a sync with the cloud
func (c *Client) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Sync()
}

// SyncWithRetry retries Sync with exponential backoff until it succeeds,
// attempts run out, or ctx is done.
func (c *Client) SyncWithRetry(ctx context.Context, baseDelay time.Duration) error {
	attempts := c.config.SyncRetries + 1
	return util.Retry(ctx, attempts, baseDelay, func() error {
		err := c.Sync()
		if err != nil {
			c.logger.Debug("sync attempt failed", "err", err)
		}
		return err
	})
}

// Reset wipes all local data (nuclear option)
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// ID returns the charm user ID
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// GetAuthorizedKeys returns the list of linked devices/keys
func (c *Client) GetAuthorizedKeys() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.AuthorizedKeys()
}

// UnlinkKey removes an authorized key from the account
func (c *Client) UnlinkKey(key string) error {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.UnlinkAuthorizedKey(key)
}
