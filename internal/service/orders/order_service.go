package orders

import (
	"context"
	"log"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/fulfillment"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/Domenick1991/airport/internal/validation"
)

type OrderUseCase interface {
	// CreateOrder stores the order and all tickets atomically, then hands the
	// order to fulfillment. Fulfillment errors are logged, never returned.
	CreateOrder(ctx context.Context, principal domain.Principal, tickets []domain.Ticket) (*domain.Order, error)
	ListOrders(ctx context.Context, principal domain.Principal) ([]domain.Order, error)
}

type CacheInvalidator interface {
	InvalidateFlights(ctx context.Context) error
}

type OrderService struct {
	orders     repository.OrderRepository
	seats      validation.SeatLookup
	dispatcher fulfillment.Dispatcher
	cache      CacheInvalidator
}

type OrderServiceOption func(*OrderService)

func WithDispatcher(dispatcher fulfillment.Dispatcher) OrderServiceOption {
	return func(s *OrderService) {
		s.dispatcher = dispatcher
	}
}

// WithCache invalidates cached flight lists after each order; they carry tickets_available.
func WithCache(cache CacheInvalidator) OrderServiceOption {
	return func(s *OrderService) {
		s.cache = cache
	}
}

func NewOrderService(orders repository.OrderRepository, seats validation.SeatLookup, opts ...OrderServiceOption) *OrderService {
	service := &OrderService{orders: orders, seats: seats}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *OrderService) CreateOrder(ctx context.Context, principal domain.Principal, tickets []domain.Ticket) (*domain.Order, error) {
	if !principal.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	seen := make(map[ticketKey]struct{}, len(tickets))
	for _, t := range tickets {
		if err := validation.ValidateTicketSeat(ctx, s.seats, t.Row, t.Seat, t.FlightID); err != nil {
			return nil, err
		}
		key := ticketKey{flightID: t.FlightID, row: t.Row, seat: t.Seat}
		if _, dup := seen[key]; dup {
			return nil, validation.SeatTakenError(t.Row, t.Seat)
		}
		seen[key] = struct{}{}
	}

	order := &domain.Order{
		UserID:  principal.UserID,
		Tickets: append([]domain.Ticket(nil), tickets...),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("flight cache invalidation failed after order %d: %v", order.ID, err)
		}
	}
	s.fulfill(ctx, order, principal.Email)
	return order, nil
}

func (s *OrderService) fulfill(ctx context.Context, order *domain.Order, recipient string) {
	if s.dispatcher == nil {
		return
	}

	// Reload for the flight titles printed on the ticket.
	stored, err := s.orders.GetByID(ctx, order.ID)
	if err != nil {
		log.Printf("load order %d for fulfillment: %v", order.ID, err)
		stored = order
	}
	if err := s.dispatcher.Dispatch(ctx, fulfillment.NewRequest(*stored, recipient)); err != nil {
		log.Printf("fulfillment of order %d failed: %v", order.ID, err)
	}
}

func (s *OrderService) ListOrders(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	if !principal.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return s.orders.ListByUser(ctx, principal.UserID)
}

type ticketKey struct {
	flightID  int64
	row, seat int
}

var _ OrderUseCase = (*OrderService)(nil)
