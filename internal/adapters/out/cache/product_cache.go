package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a product stays cached without any event.
const DefaultTTL = 5 * time.Minute

const (
	allProductsKey       = "products:all"
	catalogGenerationKey = "products:generation"
)

func productKey(id string) string      { return "product:" + id }
func generationKey(id string) string   { return "product:generation:" + id }
func barcodeKey(barcode string) string { return "product:barcode:" + barcode }

// entry is what lands in Redis: the value plus the generation counter that was
// current before the value was read from the store. Invalidation increments
// the counter, so a fill racing with a stock change is never served.
type entry struct {
	Generation int64           `json:"generation"`
	Value      json.RawMessage `json:"value"`
}

type cachedProduct struct {
	ID            string `json:"id"`
	Barcode       string `json:"barcode"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	StockQuantity int    `json:"stockQuantity"`
	UnitPrice     string `json:"unitPrice"`
}

func fromDomain(p *product.Product) cachedProduct {
	return cachedProduct{
		ID:            p.ID(),
		Barcode:       p.Barcode(),
		Name:          p.Name(),
		Category:      p.Category(),
		Location:      p.Location().String(),
		StockQuantity: p.StockQuantity(),
		UnitPrice:     p.UnitPrice().String(),
	}
}

func (c cachedProduct) toDomain() (*product.Product, error) {
	location, err := kernel.ParseLocation(c.Location)
	if err != nil {
		return nil, err
	}
	price, err := kernel.MoneyFromString(c.UnitPrice)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(c.ID, c.Barcode, c.Name, c.Category, location, c.StockQuantity, price)
}

// CachedProductReader serves catalog reads from Redis and falls back to the
// wrapped reader on a miss or any Redis failure. Misses are not cached, so a
// product added a moment ago is never reported as unknown.
//
// It is also an event publisher: product events bump the generation of the
// affected entries. When that fails the products are remembered and read
// from the store until a later invalidation gets through.
type CachedProductReader struct {
	next   ports.ProductReader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]string // generation key -> entry key
}

func NewCachedProductReader(
	next ports.ProductReader,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedProductReader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedProductReader{
		next:    next,
		client:  client,
		ttl:     ttl,
		logger:  logger.With("component", "product_cache"),
		pending: make(map[string]string),
	}
}

func (c *CachedProductReader) Get(ctx context.Context, id string) (*product.Product, error) {
	var cached cachedProduct
	generation, hit, usable := c.load(ctx, productKey(id), generationKey(id), &cached)
	if hit {
		p, err := cached.toDomain()
		if err == nil {
			return p, nil
		}
		c.logger.WarnContext(ctx, "Dropping unreadable cached product", "product_id", id, "error", err)
	}

	p, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if usable {
		c.store(ctx, productKey(id), generation, fromDomain(p))
	}
	return p, nil
}

// GetByBarcode caches the barcode to id mapping; barcodes never change.
func (c *CachedProductReader) GetByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	id, err := c.client.Get(ctx, barcodeKey(barcode)).Result()
	switch {
	case err == nil:
		return c.Get(ctx, id)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "Redis error, continuing with store", "barcode", barcode, "error", err)
	}

	p, err := c.next.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if setErr := c.client.Set(ctx, barcodeKey(barcode), p.ID(), c.ttl).Err(); setErr != nil {
		c.logger.WarnContext(ctx, "Failed to cache barcode", "barcode", barcode, "error", setErr)
	}
	return p, nil
}

func (c *CachedProductReader) GetAll(ctx context.Context) ([]*product.Product, error) {
	var cached []cachedProduct
	generation, hit, usable := c.load(ctx, allProductsKey, catalogGenerationKey, &cached)
	if hit {
		products, err := toDomainAll(cached)
		if err == nil {
			return products, nil
		}
		c.logger.WarnContext(ctx, "Dropping unreadable cached catalog", "error", err)
	}

	products, err := c.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if usable {
		all := make([]cachedProduct, 0, len(products))
		for _, p := range products {
			all = append(all, fromDomain(p))
		}
		c.store(ctx, allProductsKey, generation, all)
	}
	return products, nil
}

// Publish invalidates every product the events touched and the catalog list.
func (c *CachedProductReader) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	keys := make(map[string]string, len(events)+1)
	for _, e := range events {
		switch e.EventName() {
		case product.EventProductAdded, product.EventStockAdjusted:
			keys[generationKey(e.AggregateID())] = productKey(e.AggregateID())
		}
	}
	if len(keys) == 0 {
		return nil
	}
	keys[catalogGenerationKey] = allProductsKey

	if err := c.invalidate(ctx, keys); err != nil {
		c.mu.Lock()
		maps.Copy(c.pending, keys)
		c.mu.Unlock()
		return err
	}
	return nil
}

// invalidate bumps each generation and drops the matching entry.
func (c *CachedProductReader) invalidate(ctx context.Context, keys map[string]string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for generation, key := range keys {
			pipe.Incr(ctx, generation)
			pipe.Del(ctx, key)
		}
		return nil
	})
	return err
}

// retryPending repeats failed invalidations and reports whether genKey may be
// served from Redis.
func (c *CachedProductReader) retryPending(ctx context.Context, genKey string) bool {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return true
	}
	keys := maps.Clone(c.pending)
	c.mu.Unlock()

	if err := c.invalidate(ctx, keys); err != nil {
		c.logger.WarnContext(ctx, "Cache invalidation still failing", "keys", len(keys), "error", err)
		_, stale := keys[genKey]
		return !stale
	}

	c.mu.Lock()
	for generation := range keys {
		delete(c.pending, generation)
	}
	c.mu.Unlock()
	return true
}

// load reads an entry and its generation in one round trip. hit is set only
// for an entry written under the current generation; usable is false when the
// result of a store read must not be cached.
func (c *CachedProductReader) load(
	ctx context.Context,
	key, genKey string,
	dst any,
) (generation int64, hit, usable bool) {
	if !c.retryPending(ctx, genKey) {
		return 0, false, false
	}

	values, err := c.client.MGet(ctx, key, genKey).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "Redis error, continuing with store", "key", key, "error", err)
		return 0, false, false
	}

	generation, err = parseGeneration(values[1])
	if err != nil {
		c.logger.WarnContext(ctx, "Unreadable cache generation", "key", genKey, "error", err)
		return 0, false, false
	}

	raw, ok := values[0].(string)
	if !ok {
		return generation, false, true
	}

	var cached entry
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		c.logger.WarnContext(ctx, "Failed to unmarshal cached value", "key", key, "error", err)
		return generation, false, true
	}
	if cached.Generation != generation {
		return generation, false, true
	}
	if err := json.Unmarshal(cached.Value, dst); err != nil {
		c.logger.WarnContext(ctx, "Failed to unmarshal cached value", "key", key, "error", err)
		return generation, false, true
	}
	return generation, true, true
}

func (c *CachedProductReader) store(ctx context.Context, key string, generation int64, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to marshal cache value", "key", key, "error", err)
		return
	}
	data, err = json.Marshal(entry{Generation: generation, Value: data})
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to marshal cache value", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache value", "key", key, "error", err)
	}
}

// parseGeneration reads a counter as returned by MGET; a missing key is 0.
func parseGeneration(v any) (int64, error) {
	switch g := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(g, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected generation type %T", v)
	}
}

func toDomainAll(cached []cachedProduct) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(cached))
	for _, c := range cached {
		p, err := c.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
