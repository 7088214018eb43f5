package repository

import (
	"context"

	"gorm.io/gorm"

	"planetary/internal/model"
)

// PlanetRepository defines planet persistence operations.
type PlanetRepository interface {
	Create(ctx context.Context, planet *model.Planet) error
	Update(ctx context.Context, planet *model.Planet) error
	Delete(ctx context.Context, planet *model.Planet) error
	FindByID(ctx context.Context, id uint) (*model.Planet, error)
	FindByName(ctx context.Context, name string) (*model.Planet, error)
	List(ctx context.Context) ([]model.Planet, error)
}

type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository builds a GORM-backed repository.
func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &planetRepository{db: db}
}

func (r *planetRepository) Create(ctx context.Context, planet *model.Planet) error {
	return r.db.WithContext(ctx).Create(planet).Error
}

func (r *planetRepository) Update(ctx context.Context, planet *model.Planet) error {
	return r.db.WithContext(ctx).Save(planet).Error
}

func (r *planetRepository) Delete(ctx context.Context, planet *model.Planet) error {
	return r.db.WithContext(ctx).Delete(planet).Error
}

func (r *planetRepository) FindByID(ctx context.Context, id uint) (*model.Planet, error) {
	var planet model.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *planetRepository) FindByName(ctx context.Context, name string) (*model.Planet, error) {
	var planet model.Planet
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&planet).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *planetRepository) List(ctx context.Context) ([]model.Planet, error) {
	var planets []model.Planet
	if err := r.db.WithContext(ctx).Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}
