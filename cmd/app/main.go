package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport/api"
	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/bootstrap"
	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/email"
	"github.com/Domenick1991/airport/internal/fulfillment"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/Domenick1991/airport/internal/service/orders"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	var (
		flightOpts []flights.FlightServiceOption
		orderOpts  []orders.OrderServiceOption
	)
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Flights.CacheTTL())
		defer redisCache.Close()
		flightOpts = append(flightOpts, flights.WithCache(redisCache))
		orderOpts = append(orderOpts, orders.WithCache(redisCache))
	}

	switch cfg.Fulfillment.Mode {
	case config.FulfillmentModeKafka:
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("kafka is not reachable yet: %v", err)
		}
		orderOpts = append(orderOpts, orders.WithDispatcher(fulfillment.NewKafkaDispatcher(producer, cfg.Kafka.NotificationsTopic)))
	default:
		fulfiller := fulfillment.NewFulfiller(fulfillment.NewPDFRenderer(), email.NewSender(cfg.Mail), cfg.Fulfillment.TempDir)
		orderOpts = append(orderOpts, orders.WithDispatcher(fulfillment.NewSyncDispatcher(fulfiller)))
	}

	catalogService := catalog.NewCatalogService(catalog.Repositories{
		Airports:      repository.NewAirportRepository(pool),
		Routes:        repository.NewRouteRepository(pool),
		AirplaneTypes: repository.NewAirplaneTypeRepository(pool),
		Airplanes:     repository.NewAirplaneRepository(pool),
		Crews:         repository.NewCrewRepository(pool),
	})
	flightService := flights.NewFlightService(flightRepo, flightOpts...)
	orderService := orders.NewOrderService(orderRepo, flightRepo, orderOpts...)

	router := bootstrap.NewRouter(
		cfg.HTTP.BasePath,
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		api.NewHealthHandler(pool),
		api.NewCatalogHandler(catalogService),
		api.NewFlightHandler(flightService),
		api.NewOrderHandler(orderService),
	)

	if err := bootstrap.Run(ctx, cfg.HTTP, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
