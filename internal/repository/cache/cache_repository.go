package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"go.uber.org/zap"
)

const climateKeyPrefix = "climate:v1"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// ClimateKey - ключ оценок точки; координаты округляются до 6 знаков (~0.1 м)
func ClimateKey(coord domain.Coordinate) string {
	return fmt.Sprintf("%s:%.6f:%.6f", climateKeyPrefix, coord.Lat, coord.Lng)
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetClimateScores получает оценки точки из кеша
func (r *cacheRepository) GetClimateScores(ctx context.Context, coord domain.Coordinate) (*domain.ClimateAssessment, error) {
	data, err := r.Get(ctx, ClimateKey(coord))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var assessment domain.ClimateAssessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		r.logger.Error("Failed to unmarshal climate scores from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal climate scores: %w", err)
	}

	return &assessment, nil
}

// SetClimateScores сохраняет оценки точки в кеше
func (r *cacheRepository) SetClimateScores(ctx context.Context, assessment *domain.ClimateAssessment, ttl time.Duration) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		r.logger.Error("Failed to marshal climate scores", zap.Error(err))
		return fmt.Errorf("marshal climate scores: %w", err)
	}

	return r.Set(ctx, ClimateKey(assessment.Coordinate), data, ttl)
}
