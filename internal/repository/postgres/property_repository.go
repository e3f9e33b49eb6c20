package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const propertyColumns = `
	id, title, city, district, property_type, certificate, lat, lng,
	price, bedrooms, bathrooms, land_area, building_area, land_price_per_meter,
	climate_risk_score, risks,
	lst_score, ndvi_score, utfvi_score, uhi_score, overall_score`

// propertyRow - строка таблицы properties
type propertyRow struct {
	ID                int64         `db:"id"`
	Title             string        `db:"title"`
	City              string        `db:"city"`
	District          string        `db:"district"`
	PropertyType      string        `db:"property_type"`
	Certificate       string        `db:"certificate"`
	Lat               float64       `db:"lat"`
	Lng               float64       `db:"lng"`
	Price             int64         `db:"price"`
	Bedrooms          int           `db:"bedrooms"`
	Bathrooms         int           `db:"bathrooms"`
	LandArea          float64       `db:"land_area"`
	BuildingArea      float64       `db:"building_area"`
	LandPricePerMeter float64       `db:"land_price_per_meter"`
	ClimateRiskScore  int           `db:"climate_risk_score"`
	Risks             []byte        `db:"risks"`
	LSTScore          sql.NullInt32 `db:"lst_score"`
	NDVIScore         sql.NullInt32 `db:"ndvi_score"`
	UTFVIScore        sql.NullInt32 `db:"utfvi_score"`
	UHIScore          sql.NullInt32 `db:"uhi_score"`
	OverallScore      sql.NullInt32 `db:"overall_score"`
}

type propertyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPropertyRepository(db *DB) repository.PropertyRepository {
	return &propertyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *propertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	conds := []string{"price >= $1", "climate_risk_score >= $2", "bedrooms >= $3", "bathrooms >= $4"}
	args := []interface{}{filter.MinPrice, filter.MinScore, filter.MinBedrooms, filter.MinBathrooms}

	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	args = append(args, MaxQueryLimit)
	query := fmt.Sprintf("SELECT %s FROM properties WHERE %s ORDER BY id LIMIT $%d",
		propertyColumns, strings.Join(conds, " AND "), len(args))

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to list properties", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.toDomainList(rows), nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)

	var row propertyRow
	err := r.db.GetContext(ctx, &row, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPropertyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get property by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.toDomain(row), nil
}

func (r *propertyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Property, error) {
	if len(ids) == 0 {
		return []*domain.Property{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ANY($1) ORDER BY id", propertyColumns)

	var rows []propertyRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get properties by IDs", zap.Int64s("ids", ids), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.toDomainList(rows), nil
}

func (r *propertyRepository) toDomainList(rows []propertyRow) []*domain.Property {
	result := make([]*domain.Property, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.toDomain(row))
	}
	return result
}

func (r *propertyRepository) toDomain(row propertyRow) *domain.Property {
	p := &domain.Property{
		ID:                row.ID,
		Title:             row.Title,
		City:              row.City,
		District:          row.District,
		PropertyType:      row.PropertyType,
		Certificate:       row.Certificate,
		Location:          domain.Coordinate{Lat: row.Lat, Lng: row.Lng},
		Price:             row.Price,
		Bedrooms:          row.Bedrooms,
		Bathrooms:         row.Bathrooms,
		LandArea:          row.LandArea,
		BuildingArea:      row.BuildingArea,
		LandPricePerMeter: row.LandPricePerMeter,
		ClimateRiskScore:  row.ClimateRiskScore,
	}

	// Unmarshal risks JSON if present
	if len(row.Risks) > 0 {
		risks := make(map[string]domain.RiskLevel)
		if err := json.Unmarshal(row.Risks, &risks); err != nil {
			r.logger.Warn("Failed to unmarshal risks", zap.Int64("id", row.ID), zap.Error(err))
		} else {
			p.Risks = risks
		}
	}

	// Оценки хранятся только целиком
	if row.LSTScore.Valid && row.NDVIScore.Valid && row.UTFVIScore.Valid &&
		row.UHIScore.Valid && row.OverallScore.Valid {
		p.ClimateScores = &domain.ClimateScores{
			LST:     int(row.LSTScore.Int32),
			NDVI:    int(row.NDVIScore.Int32),
			UTFVI:   int(row.UTFVIScore.Int32),
			UHI:     int(row.UHIScore.Int32),
			Overall: int(row.OverallScore.Int32),
		}
	}

	return p
}
