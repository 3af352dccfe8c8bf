package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/guttosm/slotting-service/internal/catalog"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/logger"
	"github.com/guttosm/slotting-service/internal/repository"
)

// CatalogService resolves and maintains named locations and pallets.
type CatalogService interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	GetLocation(ctx context.Context, name string) (model.Location, error)
	UpsertLocation(ctx context.Context, loc model.Location) (model.Location, error)
	DeleteLocation(ctx context.Context, name string) error
	ListPallets(ctx context.Context) ([]model.Pallet, error)
	GetPallet(ctx context.Context, name string) (model.Pallet, error)
	UpsertPallet(ctx context.Context, p model.Pallet) (model.Pallet, error)
	DeletePallet(ctx context.Context, name string) error
	// ReadOnly reports whether writes are rejected with ErrCatalogReadOnly.
	ReadOnly() bool
}

// StaticCatalogService serves an in-memory catalog that never changes.
type StaticCatalogService struct {
	catalog *catalog.Catalog
}

// NewStaticCatalogService serves c, or the built-in defaults when c is nil.
func NewStaticCatalogService(c *catalog.Catalog) *StaticCatalogService {
	if c == nil {
		c = catalog.Default()
	}
	return &StaticCatalogService{catalog: c}
}

func (s *StaticCatalogService) ListLocations(context.Context) ([]model.Location, error) {
	return s.catalog.Locations(), nil
}

func (s *StaticCatalogService) GetLocation(_ context.Context, name string) (model.Location, error) {
	loc, ok := s.catalog.Location(name)
	if !ok {
		return model.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	return loc, nil
}

func (s *StaticCatalogService) UpsertLocation(context.Context, model.Location) (model.Location, error) {
	return model.Location{}, ErrCatalogReadOnly
}

func (s *StaticCatalogService) DeleteLocation(context.Context, string) error {
	return ErrCatalogReadOnly
}

func (s *StaticCatalogService) ListPallets(context.Context) ([]model.Pallet, error) {
	return s.catalog.Pallets(), nil
}

func (s *StaticCatalogService) GetPallet(_ context.Context, name string) (model.Pallet, error) {
	p, ok := s.catalog.Pallet(name)
	if !ok {
		return model.Pallet{}, fmt.Errorf("%w: %q", ErrPalletNotFound, name)
	}
	return p, nil
}

func (s *StaticCatalogService) UpsertPallet(context.Context, model.Pallet) (model.Pallet, error) {
	return model.Pallet{}, ErrCatalogReadOnly
}

func (s *StaticCatalogService) DeletePallet(context.Context, string) error {
	return ErrCatalogReadOnly
}

func (s *StaticCatalogService) ReadOnly() bool { return true }

// StoredCatalogService keeps the catalog in MongoDB.
type StoredCatalogService struct {
	repo repository.CatalogRepositoryInterface
	log  zerolog.Logger
}

// NewStoredCatalogService creates a catalog service backed by repo.
func NewStoredCatalogService(repo repository.CatalogRepositoryInterface) *StoredCatalogService {
	return &StoredCatalogService{
		repo: repo,
		log:  logger.Component("catalog"),
	}
}

// Seed inserts the entries of c that are not stored yet. Existing entries are left untouched.
func (s *StoredCatalogService) Seed(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		c = catalog.Default()
	}
	inserted, err := s.repo.Seed(ctx, c.Locations(), c.Pallets())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if inserted > 0 {
		s.log.Info().Int("inserted", inserted).Msg("catalog seeded")
	}
	return nil
}

func (s *StoredCatalogService) ListLocations(ctx context.Context) ([]model.Location, error) {
	return s.repo.ListLocations(ctx)
}

func (s *StoredCatalogService) GetLocation(ctx context.Context, name string) (model.Location, error) {
	name = strings.TrimSpace(name)
	loc, err := s.repo.GetLocation(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	if err != nil {
		return model.Location{}, err
	}
	return *loc, nil
}

func (s *StoredCatalogService) UpsertLocation(ctx context.Context, loc model.Location) (model.Location, error) {
	loc.Name = strings.TrimSpace(loc.Name)
	if err := loc.Validate(); err != nil {
		return model.Location{}, fmt.Errorf("%w: %v", ErrInvalidCatalogEntry, err)
	}
	if err := s.repo.UpsertLocation(ctx, &loc); err != nil {
		return model.Location{}, err
	}
	s.log.Info().Str("location", loc.Name).Msg("location saved")
	return loc, nil
}

func (s *StoredCatalogService) DeleteLocation(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	err := s.repo.DeleteLocation(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	return err
}

func (s *StoredCatalogService) ListPallets(ctx context.Context) ([]model.Pallet, error) {
	return s.repo.ListPallets(ctx)
}

func (s *StoredCatalogService) GetPallet(ctx context.Context, name string) (model.Pallet, error) {
	name = strings.TrimSpace(name)
	p, err := s.repo.GetPallet(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Pallet{}, fmt.Errorf("%w: %q", ErrPalletNotFound, name)
	}
	if err != nil {
		return model.Pallet{}, err
	}
	return *p, nil
}

func (s *StoredCatalogService) UpsertPallet(ctx context.Context, p model.Pallet) (model.Pallet, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return model.Pallet{}, fmt.Errorf("%w: %v", ErrInvalidCatalogEntry, err)
	}
	if err := s.repo.UpsertPallet(ctx, &p); err != nil {
		return model.Pallet{}, err
	}
	s.log.Info().Str("pallet", p.Name).Msg("pallet saved")
	return p, nil
}

func (s *StoredCatalogService) DeletePallet(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	err := s.repo.DeletePallet(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrPalletNotFound, name)
	}
	return err
}

func (s *StoredCatalogService) ReadOnly() bool { return false }

var (
	_ CatalogService = (*StaticCatalogService)(nil)
	_ CatalogService = (*StoredCatalogService)(nil)
)
