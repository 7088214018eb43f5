package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"planetary/internal/cache"
	"planetary/internal/errors"
	"planetary/internal/model"
	"planetary/internal/repository"
)

const (
	planetCacheTTL     = 5 * time.Minute
	planetListCacheKey = "planets"
)

// PlanetService handles planet operations.
type PlanetService interface {
	List(ctx context.Context) ([]model.Planet, error)
	Get(ctx context.Context, id uint) (*model.Planet, error)
	Add(ctx context.Context, name string, mass, radius, distance float64) (*model.Planet, error)
	Update(ctx context.Context, id uint, name string, mass, radius, distance float64) (*model.Planet, error)
	Remove(ctx context.Context, id uint) error
}

type planetService struct {
	repo  repository.PlanetRepository
	cache *cache.Client
}

// NewPlanetService creates a new planet service.
func NewPlanetService(repo repository.PlanetRepository, cache *cache.Client) PlanetService {
	return &planetService{
		repo:  repo,
		cache: cache,
	}
}

func (s *planetService) cacheKey(id uint) string {
	return fmt.Sprintf("planet:%d", id)
}

// invalidate drops both the per-planet entry and the full list.
func (s *planetService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.Delete(ctx, planetListCacheKey)
}

// List returns all planets in storage order, reading through the cache.
func (s *planetService) List(ctx context.Context) ([]model.Planet, error) {
	var cached []model.Planet
	if s.cache.GetJSON(ctx, planetListCacheKey, &cached) {
		return cached, nil
	}

	planets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, planetListCacheKey, planets, planetCacheTTL)
	return planets, nil
}

// Get retrieves a planet by id with caching.
func (s *planetService) Get(ctx context.Context, id uint) (*model.Planet, error) {
	var cached model.Planet
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	planet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlanetNotFound
		}
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(id), planet, planetCacheTTL)
	return planet, nil
}

// Add creates a planet, refusing duplicate names. The lookup gives the
// friendly message; the unique index catches a racing insert.
func (s *planetService) Add(ctx context.Context, name string, mass, radius, distance float64) (*model.Planet, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, errors.ErrPlanetExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check planet existence: %w", err)
	}

	planet := &model.Planet{
		Name:     name,
		Mass:     mass,
		Radius:   radius,
		Distance: distance,
	}

	if err := s.repo.Create(ctx, planet); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrPlanetExists
		}
		return nil, fmt.Errorf("create planet: %w", err)
	}

	s.invalidate(ctx, planet.ID)
	return planet, nil
}

// Update overwrites all four mutable fields of an existing planet.
func (s *planetService) Update(ctx context.Context, id uint, name string, mass, radius, distance float64) (*model.Planet, error) {
	planet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlanetNotFound
		}
		return nil, fmt.Errorf("find planet: %w", err)
	}

	planet.Name = name
	planet.Mass = mass
	planet.Radius = radius
	planet.Distance = distance

	if err := s.repo.Update(ctx, planet); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrPlanetExists
		}
		return nil, fmt.Errorf("update planet: %w", err)
	}

	s.invalidate(ctx, planet.ID)
	return planet, nil
}

// Remove deletes a planet by id.
func (s *planetService) Remove(ctx context.Context, id uint) error {
	planet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPlanetNotFound
		}
		return fmt.Errorf("find planet: %w", err)
	}

	if err := s.repo.Delete(ctx, planet); err != nil {
		return fmt.Errorf("delete planet: %w", err)
	}

	s.invalidate(ctx, id)
	return nil
}
