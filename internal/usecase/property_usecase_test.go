package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/repository/memory"
	"github.com/smartproperty-service/internal/usecase"
	"github.com/smartproperty-service/internal/usecase/dto"
)

func newSeededPropertyUseCase() *usecase.PropertyUseCase {
	logger := zap.NewNop()
	return usecase.NewPropertyUseCase(memory.NewPropertyRepository(memory.SeedProperties(), logger), logger)
}

func ids(properties []*domain.Property) []int64 {
	out := make([]int64, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.ID)
	}
	return out
}

func TestPropertyUseCase_List(t *testing.T) {
	uc := newSeededPropertyUseCase()
	ctx := context.Background()

	t.Run("no filters", func(t *testing.T) {
		resp, err := uc.List(ctx, dto.PropertyListRequest{})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Count)
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(resp.Properties))
	})

	t.Run("price and score", func(t *testing.T) {
		resp, err := uc.List(ctx, dto.PropertyListRequest{MinPrice: 2000000000, MaxPrice: 5000000000, MinScore: 80})
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids(resp.Properties))
	})

	t.Run("bedrooms and bathrooms", func(t *testing.T) {
		resp, err := uc.List(ctx, dto.PropertyListRequest{Bedrooms: 4, Bathrooms: 3})
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 4}, ids(resp.Properties))
	})

	t.Run("negative score rejected", func(t *testing.T) {
		_, err := uc.List(ctx, dto.PropertyListRequest{MinScore: -1})
		assertAppError(t, err, "INVALID_REQUEST")
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &MockPropertyRepository{}
		repo.On("List", ctx, mock.Anything).Return(nil, errors.New("db down"))
		uc := usecase.NewPropertyUseCase(repo, zap.NewNop())

		_, err := uc.List(ctx, dto.PropertyListRequest{})
		assert.Error(t, err)
	})
}

func TestPropertyUseCase_Get(t *testing.T) {
	uc := newSeededPropertyUseCase()

	p, err := uc.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Cilandak", p.District)

	_, err = uc.Get(context.Background(), 99)
	assertAppError(t, err, "PROPERTY_NOT_FOUND")
}

func TestParsePropertyIDs(t *testing.T) {
	got, err := usecase.ParsePropertyIDs(" 3, 1,,2 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, got)

	_, err = usecase.ParsePropertyIDs("")
	assertAppError(t, err, "INVALID_REQUEST")

	_, err = usecase.ParsePropertyIDs(" , ")
	assertAppError(t, err, "INVALID_REQUEST")

	_, err = usecase.ParsePropertyIDs("1,abc")
	assertAppError(t, err, "INVALID_REQUEST")
}

func TestPropertyUseCase_Compare(t *testing.T) {
	uc := newSeededPropertyUseCase()
	ctx := context.Background()

	resp, err := uc.Compare(ctx, "4,1,99,1")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids(resp.Properties))
	assert.Equal(t, 2, resp.Count)

	_, err = uc.Compare(ctx, "98,99")
	assertAppError(t, err, "PROPERTY_NOT_FOUND")

	_, err = uc.Compare(ctx, "")
	assertAppError(t, err, "INVALID_REQUEST")
}

func TestPropertyUseCase_Recommend(t *testing.T) {
	uc := newSeededPropertyUseCase()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      dto.RecommendRequest
		expected []int64
	}{
		{"default priority is overall", dto.RecommendRequest{}, []int64{4, 2, 1}},
		{"overall", dto.RecommendRequest{Priority: "overall"}, []int64{4, 2, 1}},
		{"flood is stable on ties", dto.RecommendRequest{Priority: "flood"}, []int64{2, 4, 1}},
		{"temperature", dto.RecommendRequest{Priority: "temperature"}, []int64{2, 4, 1}},
		{"unknown levels rank as medium", dto.RecommendRequest{Priority: "air_quality"}, []int64{1, 2, 3}},
		{"landslide", dto.RecommendRequest{Priority: "landslide"}, []int64{1, 2, 3}},
		{"unknown priority keeps order", dto.RecommendRequest{Priority: "noise"}, []int64{1, 2, 3}},
		{"price ceiling", dto.RecommendRequest{MaxPrice: 3000000000}, []int64{1, 3, 5}},
		{"bedrooms", dto.RecommendRequest{Bedrooms: 4}, []int64{4, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Recommend(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(resp.Properties))
			assert.LessOrEqual(t, resp.Count, usecase.RecommendLimit)
		})
	}
}

func TestRankProperties_MissingRiskIsMedium(t *testing.T) {
	properties := []*domain.Property{
		{ID: 1, Risks: map[string]domain.RiskLevel{domain.RiskFactorFlood: domain.RiskHigh}},
		{ID: 2},
		{ID: 3, Risks: map[string]domain.RiskLevel{domain.RiskFactorFlood: domain.RiskLow}},
	}

	usecase.RankProperties(properties, domain.RiskFactorFlood)

	assert.Equal(t, []int64{3, 2, 1}, ids(properties))
}
