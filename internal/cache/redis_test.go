package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}), time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	flights, err := c.GetFlights(context.Background(), 0, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Nil(t, flights)
}

func TestRedisCache_RoundTripPerFilter(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()
	dep := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	flights := []domain.Flight{{ID: 1, RouteTitle: "New York - Los Angeles", AirplaneName: "Boeing", TicketsAvailable: 9, DepartureDate: dep, ArrivalDate: dep.Add(5 * time.Hour)}}
	require.NoError(t, c.SetFlights(ctx, 0, domain.FlightFilter{Source: "New York"}, flights))

	got, err := c.GetFlights(ctx, 0, domain.FlightFilter{Source: "new york"})
	require.NoError(t, err)
	assert.Equal(t, flights, got)

	other, err := c.GetFlights(ctx, 0, domain.FlightFilter{Destination: "New York"})
	require.NoError(t, err)
	assert.Nil(t, other)

	assert.Equal(t, time.Minute, srv.TTL(flightsKey(0, domain.FlightFilter{Source: "New York"})))
}

func TestRedisCache_SeparatorInsideFilterValue(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	a := domain.FlightFilter{Source: "a|", Destination: "b"}
	b := domain.FlightFilter{Source: "a", Destination: "|b"}
	assert.NotEqual(t, flightsKey(0, a), flightsKey(0, b))

	require.NoError(t, c.SetFlights(ctx, 0, a, []domain.Flight{{ID: 1}}))

	got, err := c.GetFlights(ctx, 0, b)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidateFlights(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetFlights(ctx, 0, domain.FlightFilter{}, []domain.Flight{{ID: 1}}))
	require.NoError(t, c.SetFlights(ctx, 0, domain.FlightFilter{Airplane: "Airbus"}, []domain.Flight{{ID: 2}}))
	require.NoError(t, srv.Set("unrelated", "keep"))

	require.NoError(t, c.InvalidateFlights(ctx))

	got, err := c.GetFlights(ctx, 0, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, srv.Exists("unrelated"))
}

func TestRedisCache_InvalidateBumpsGeneration(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	gen, err := c.FlightsGeneration(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.InvalidateFlights(ctx))
	require.NoError(t, c.InvalidateFlights(ctx))

	gen, err = c.FlightsGeneration(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
}

func TestRedisCache_WriteUnderRetiredGenerationIsNotRead(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	stale, err := c.FlightsGeneration(ctx)
	require.NoError(t, err)
	require.NoError(t, c.InvalidateFlights(ctx))
	require.NoError(t, c.SetFlights(ctx, stale, domain.FlightFilter{}, []domain.Flight{{ID: 1, TicketsAvailable: 9}}))

	current, err := c.FlightsGeneration(ctx)
	require.NoError(t, err)
	got, err := c.GetFlights(ctx, current, domain.FlightFilter{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidateEmpty(t *testing.T) {
	c, _ := newTestCache(t)
	assert.NoError(t, c.InvalidateFlights(context.Background()))
}
