package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb"
	geo "github.com/paulmach/orb/geojson"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/observability"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Свойства feature с кодом классификации, в порядке приоритета
var codeProperties = []string{"gridcode", "classification_code"}

// ZoneCatalog - кеш слоев зон по индикаторам.
// Слой загружается с диска при первом обращении и далее не меняется.
// Неудачная загрузка не кешируется.
type ZoneCatalog struct {
	root    string
	logger  *zap.Logger
	metrics *observability.Metrics

	mu     sync.RWMutex
	layers map[domain.Indicator]*domain.ZoneCollection
	group  singleflight.Group
}

// NewZoneCatalog создает каталог с корнем данных root
func NewZoneCatalog(root string, metrics *observability.Metrics, logger *zap.Logger) *ZoneCatalog {
	return &ZoneCatalog{
		root:    root,
		logger:  logger,
		metrics: metrics,
		layers:  make(map[domain.Indicator]*domain.ZoneCollection),
	}
}

// CandidatePaths возвращает пути файлов слоя в порядке приоритета
func (c *ZoneCatalog) CandidatePaths(indicator domain.Indicator) []string {
	name := string(indicator) + ".geojson"
	return []string{
		filepath.Join(c.root, "geojson", name),
		filepath.Join(c.root, name),
		filepath.Join(c.root, "static", name),
		filepath.Join(c.root, "geojson", name+".gz"),
	}
}

// Load возвращает слой индикатора. false означает отсутствие данных, а не ошибку.
func (c *ZoneCatalog) Load(ctx context.Context, indicator domain.Indicator) (*domain.ZoneCollection, bool) {
	if layer, ok := c.cached(indicator); ok {
		return layer, true
	}

	v, _, _ := c.group.Do(string(indicator), func() (interface{}, error) {
		if layer, ok := c.cached(indicator); ok {
			return layer, nil
		}

		layer := c.loadFromDisk(indicator)
		if layer == nil {
			c.metrics.CatalogLoads.WithLabelValues(string(indicator), "absent").Inc()
			return nil, nil
		}

		c.mu.Lock()
		c.layers[indicator] = layer
		c.mu.Unlock()

		c.metrics.CatalogLoads.WithLabelValues(string(indicator), "loaded").Inc()
		c.logger.Info("Zone layer loaded",
			zap.String("indicator", string(indicator)),
			zap.String("source", layer.Source),
			zap.Int("zones", layer.Len()))
		return layer, nil
	})

	layer, ok := v.(*domain.ZoneCollection)
	if !ok || layer == nil {
		return nil, false
	}
	return layer, true
}

// Preload загружает все слои и возвращает число загруженных
func (c *ZoneCatalog) Preload(ctx context.Context) int {
	loaded := 0
	for _, ind := range domain.Indicators {
		if ctx.Err() != nil {
			break
		}
		if _, ok := c.Load(ctx, ind); ok {
			loaded++
			continue
		}
		c.logger.Warn("Zone layer not available", zap.String("indicator", string(ind)))
	}
	return loaded
}

func (c *ZoneCatalog) cached(indicator domain.Indicator) (*domain.ZoneCollection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	layer, ok := c.layers[indicator]
	return layer, ok
}

func (c *ZoneCatalog) loadFromDisk(indicator domain.Indicator) *domain.ZoneCollection {
	for _, path := range c.CandidatePaths(indicator) {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		fc, err := readFeatureCollection(path)
		if err != nil {
			c.logger.Warn("Failed to parse zone layer",
				zap.String("indicator", string(indicator)),
				zap.String("path", path),
				zap.Error(err))
			continue
		}

		return &domain.ZoneCollection{
			Indicator: indicator,
			Source:    path,
			Zones:     zonesFromFeatures(fc),
			Features:  fc,
		}
	}

	c.logger.Debug("No zone layer file found", zap.String("indicator", string(indicator)))
	return nil
}

func readFeatureCollection(path string) (*geo.FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read layer: %w", err)
	}

	fc, err := geo.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal feature collection: %w", err)
	}
	return fc, nil
}

// zonesFromFeatures оставляет только полигональные features в исходном порядке
func zonesFromFeatures(fc *geo.FeatureCollection) []domain.ZoneRecord {
	zones := make([]domain.ZoneRecord, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			continue
		}

		code, ok := classificationCode(f.Properties)
		zones = append(zones, domain.ZoneRecord{Geometry: f.Geometry, Code: code, HasCode: ok})
	}
	return zones
}

func classificationCode(props geo.Properties) (int, bool) {
	for _, key := range codeProperties {
		v, exists := props[key]
		if !exists || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
				return 0, false
			}
			return int(n), true
		case int:
			return n, true
		case json.Number:
			i, err := n.Int64()
			return int(i), err == nil
		case string:
			i, err := strconv.Atoi(strings.TrimSpace(n))
			return i, err == nil
		}
		return 0, false
	}
	return 0, false
}
