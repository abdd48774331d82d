package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	flightsKeyPrefix = "cache:flights:"
	// Kept outside flightsKeyPrefix so invalidation never scans it away.
	flightsGenerationKey = "cache:flights_generation"
)

// RedisCache keeps flight list projections keyed by generation and filter.
// Entries carry tickets_available, so every flight or order write must call
// InvalidateFlights. Readers take the generation before querying storage and
// write back under it; a list computed before an invalidation lands in a
// retired generation and is never served.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL}
}

// FlightsGeneration returns 0 until the first invalidation.
func (c *RedisCache) FlightsGeneration(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, flightsGenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return gen, nil
}

// GetFlights returns nil, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context, generation int64, filter domain.FlightFilter) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey(generation, filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, generation int64, filter domain.FlightFilter, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(generation, filter), payload, c.flightsTTL).Err()
}

// InvalidateFlights retires the current generation, then drops the stored lists.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	if err := c.client.Incr(ctx, flightsGenerationKey).Err(); err != nil {
		return fmt.Errorf("bump flight generation: %w", err)
	}

	iter := c.client.Scan(ctx, 0, flightsKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan flight keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Filters match case-insensitively, so keys are lower-cased too. The values
// are JSON-encoded as a list, which keeps separators inside them unambiguous.
func flightsKey(generation int64, filter domain.FlightFilter) string {
	values, _ := json.Marshal([]string{
		strings.ToLower(filter.Source),
		strings.ToLower(filter.Destination),
		strings.ToLower(filter.Airplane),
	})
	return flightsKeyPrefix + strconv.FormatInt(generation, 10) + ":" + string(values)
}
