package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/smartproperty-service/internal/domain"
)

type MockZoneCatalog struct {
	mock.Mock
}

func (m *MockZoneCatalog) Load(ctx context.Context, indicator domain.Indicator) (*domain.ZoneCollection, bool) {
	args := m.Called(ctx, indicator)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.ZoneCollection), args.Bool(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetClimateScores(ctx context.Context, coord domain.Coordinate) (*domain.ClimateAssessment, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClimateAssessment), args.Error(1)
}

func (m *MockCacheRepository) SetClimateScores(ctx context.Context, assessment *domain.ClimateAssessment, ttl time.Duration) error {
	args := m.Called(ctx, assessment, ttl)
	return args.Error(0)
}

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Property, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}

type MockPriceModel struct {
	mock.Mock
}

func (m *MockPriceModel) Predict(ctx context.Context, features domain.PriceFeatures) (float64, error) {
	args := m.Called(ctx, features)
	return args.Get(0).(float64), args.Error(1)
}

type MockClimateScorer struct {
	mock.Mock
}

func (m *MockClimateScorer) GetClimateScores(ctx context.Context, coord domain.Coordinate) domain.ClimateScores {
	args := m.Called(ctx, coord)
	return args.Get(0).(domain.ClimateScores)
}

// codeResolver returns a fixed classification code per indicator.
type codeResolver map[domain.Indicator]int

func (r codeResolver) Name() string { return "fixed" }

func (r codeResolver) Resolve(zones *domain.ZoneCollection, _ domain.Coordinate) (int, bool) {
	code, ok := r[zones.Indicator]
	return code, ok
}

type panicResolver struct{}

func (panicResolver) Name() string { return "panic" }

func (panicResolver) Resolve(*domain.ZoneCollection, domain.Coordinate) (int, bool) {
	panic("corrupt geometry")
}
