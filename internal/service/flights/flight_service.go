package flights

import (
	"context"
	"log"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	// Patch loads the flight, lets apply change it and stores the result.
	Patch(ctx context.Context, id int64, apply func(domain.Flight) domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

// FlightCache is satisfied by cache.RedisCache. InvalidateFlights moves the
// cache to a new generation; lists stored under an older one are never read.
type FlightCache interface {
	FlightsGeneration(ctx context.Context) (int64, error)
	GetFlights(ctx context.Context, generation int64, filter domain.FlightFilter) ([]domain.Flight, error)
	SetFlights(ctx context.Context, generation int64, filter domain.FlightFilter, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	if s.cache == nil {
		return s.repo.List(ctx, filter)
	}

	// The generation must be read before the repository so a concurrent
	// invalidation retires whatever this call writes back.
	generation, err := s.cache.FlightsGeneration(ctx)
	if err != nil {
		log.Printf("flight cache generation read failed: %v", err)
		return s.repo.List(ctx, filter)
	}

	cached, err := s.cache.GetFlights(ctx, generation, filter)
	if err != nil {
		log.Printf("flight cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetFlights(ctx, generation, filter, flights); err != nil {
		log.Printf("flight cache write failed: %v", err)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Update(ctx context.Context, flight *domain.Flight) error {
	if err := s.repo.Update(ctx, flight); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Patch(ctx context.Context, id int64, apply func(domain.Flight) domain.Flight) (*domain.Flight, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := apply(*current)
	updated.ID = id
	if err := s.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate drops cached lists; they embed tickets_available and flight fields.
func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("flight cache invalidation failed: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
