package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCatalogUseCase) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockCatalogUseCase) CreateRoute(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogUseCase) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogUseCase) CreateAirplaneType(ctx context.Context, airplaneType *domain.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockCatalogUseCase) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockCatalogUseCase) ListCrews(ctx context.Context) ([]domain.Crew, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Crew), args.Error(1)
}

func (m *MockCatalogUseCase) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func TestCatalogHandler_ListAirports_Anonymous(t *testing.T) {
	svc := &MockCatalogUseCase{}
	r := newTestRouter(NewCatalogHandler(svc))

	svc.On("ListAirports", mock.Anything).Return([]domain.Airport{{ID: 1, Name: "JFK", ClosestBigCity: "New York"}}, nil)

	w := do(r, http.MethodGet, "/api/airport/airports/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"JFK","closest_big_city":"New York"}]`, w.Body.String())
}

func TestCatalogHandler_CreateAirport(t *testing.T) {
	svc := &MockCatalogUseCase{}
	r := newTestRouter(NewCatalogHandler(svc))

	svc.On("CreateAirport", mock.Anything, &domain.Airport{Name: "JFK", ClosestBigCity: "New York"}).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Airport).ID = 4 }).
		Return(nil)

	anonymous := do(r, http.MethodPost, "/api/airport/airports/", "", map[string]string{"name": "JFK", "closest_big_city": "New York"})
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	w := do(r, http.MethodPost, "/api/airport/airports/", bearer(t, 1), map[string]string{"name": "JFK", "closest_big_city": "New York"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":4,"name":"JFK","closest_big_city":"New York"}`, w.Body.String())
	svc.AssertNumberOfCalls(t, "CreateAirport", 1)
}

func TestCatalogHandler_CreateAirport_MissingField(t *testing.T) {
	r := newTestRouter(NewCatalogHandler(&MockCatalogUseCase{}))

	w := do(r, http.MethodPost, "/api/airport/airports/", bearer(t, 1), map[string]string{"name": "JFK"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"closest_big_city":["This field is required."]}`, w.Body.String())
}

func TestCatalogHandler_CreateAirport_MalformedJSON(t *testing.T) {
	r := newTestRouter(NewCatalogHandler(&MockCatalogUseCase{}))

	w := do(r, http.MethodPost, "/api/airport/airports/", bearer(t, 1), `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"detail"`)
}

func TestCatalogHandler_CreateAirport_DuplicateIsValidationError(t *testing.T) {
	svc := &MockCatalogUseCase{}
	r := newTestRouter(NewCatalogHandler(svc))

	svc.On("CreateAirport", mock.Anything, mock.Anything).Return(
		domain.NewValidationError(domain.NonFieldErrors, "The fields name, closest_big_city must make a unique set.", domain.ErrIntegrityConflict))

	w := do(r, http.MethodPost, "/api/airport/airports/", bearer(t, 1), map[string]string{"name": "JFK", "closest_big_city": "New York"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"non_field_errors":["The fields name, closest_big_city must make a unique set."]}`, w.Body.String())
}

func TestCatalogHandler_CreateRoute(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "created",
			wantCode: http.StatusCreated,
			wantBody: `{"id":0,"source":1,"destination":2,"distance":500}`,
		},
		{
			name:     "illegal route",
			err:      domain.NewValidationError(domain.NonFieldErrors, "You can`t create this route.", domain.ErrInvalidRoute),
			wantCode: http.StatusBadRequest,
			wantBody: "{\"non_field_errors\":[\"You can`t create this route.\"]}",
		},
		{
			name:     "lost race",
			err:      &domain.ConflictError{Constraint: "routes_source_destination_key", Message: "This route already exists."},
			wantCode: http.StatusConflict,
			wantBody: `{"detail":"This route already exists."}`,
		},
		{
			name:     "storage failure",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCatalogUseCase{}
			r := newTestRouter(NewCatalogHandler(svc))
			svc.On("CreateRoute", mock.Anything, &domain.Route{SourceID: 1, DestinationID: 2, Distance: 500}).Return(tt.err)

			w := do(r, http.MethodPost, "/api/airport/routes/", bearer(t, 1), map[string]int{"source": 1, "destination": 2, "distance": 500})

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCatalogHandler_CreateRoute_DistanceBounds(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		wantBody string
	}{
		{
			name:     "zero",
			body:     map[string]any{"source": 1, "destination": 2, "distance": 0},
			wantBody: `{"distance":["Ensure this value is greater than or equal to 1."]}`,
		},
		{
			name:     "negative",
			body:     map[string]any{"source": 1, "destination": 2, "distance": -5},
			wantBody: `{"distance":["Ensure this value is greater than or equal to 1."]}`,
		},
		{
			name:     "missing",
			body:     map[string]any{"source": 1, "destination": 2},
			wantBody: `{"distance":["This field is required."]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCatalogUseCase{}
			r := newTestRouter(NewCatalogHandler(svc))

			w := do(r, http.MethodPost, "/api/airport/routes/", bearer(t, 1), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			svc.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogHandler_ListRoutes(t *testing.T) {
	svc := &MockCatalogUseCase{}
	r := newTestRouter(NewCatalogHandler(svc))

	svc.On("ListRoutes", mock.Anything).Return([]domain.Route{{
		ID: 1, SourceID: 1, DestinationID: 2, Distance: 3900,
		Source:      &domain.Airport{ID: 1, Name: "JFK", ClosestBigCity: "New York"},
		Destination: &domain.Airport{ID: 2, Name: "LAX", ClosestBigCity: "Los Angeles"},
	}}, nil)

	w := do(r, http.MethodGet, "/api/airport/routes/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"source":"JFK","destination":"LAX","distance":3900}]`, w.Body.String())
}

func TestCatalogHandler_AirplaneTypeRetrieve(t *testing.T) {
	svc := &MockCatalogUseCase{}
	r := newTestRouter(NewCatalogHandler(svc))

	svc.On("GetAirplaneType", mock.Anything, int64(1)).Return(&domain.AirplaneType{
		ID: 1, Name: "Narrow body",
		Airplanes: []domain.Airplane{{ID: 3, Name: "Boeing 737", Rows: 3, SeatsInRow: 3}},
	}, nil)
	svc.On("GetAirplaneType", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

	w := do(r, http.MethodGet, "/api/airport/airplane-types/1/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Narrow body","airplanes":[{"id":3,"name":"Boeing 737","capacity":9}]}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/airport/airplane-types/2/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/airport/airplane-types/abc/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_CreateAirplane_Bounds(t *testing.T) {
	r := newTestRouter(NewCatalogHandler(&MockCatalogUseCase{}))

	w := do(r, http.MethodPost, "/api/airport/airplanes/", bearer(t, 1),
		map[string]any{"name": "Tiny", "rows": -1, "seats_in_row": 2, "airplane_type": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"rows":["Ensure this value is greater than or equal to 1."]}`, w.Body.String())
}

func TestCatalogHandler_ListAirplanesShowsCapacity(t *testing.T) {
	svc := &MockCatalogUseCase{}
	r := newTestRouter(NewCatalogHandler(svc))

	svc.On("ListAirplanes", mock.Anything).Return([]domain.Airplane{{ID: 1, Name: "Boeing 737", Rows: 30, SeatsInRow: 6, AirplaneTypeID: 1}}, nil)

	w := do(r, http.MethodGet, "/api/airport/airplanes/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Boeing 737","capacity":180}]`, w.Body.String())
}

func TestCatalogHandler_UnsupportedMethod(t *testing.T) {
	r := newTestRouter(NewCatalogHandler(&MockCatalogUseCase{}))

	w := do(r, http.MethodDelete, "/api/airport/crews/", bearer(t, 1), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
