package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// CatalogRepository stores locations and pallets by unique name.
type CatalogRepository struct {
	locations *mongo.Collection
	pallets   *mongo.Collection
}

// NewCatalogRepository creates a catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		locations: db.Locations,
		pallets:   db.Pallets,
	}
}

var byName = options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

// ListLocations returns every location sorted by name.
func (r *CatalogRepository) ListLocations(ctx context.Context) ([]model.Location, error) {
	cursor, err := r.locations.Find(ctx, bson.M{}, byName)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	locations := []model.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// GetLocation returns ErrNotFound when name is unknown.
func (r *CatalogRepository) GetLocation(ctx context.Context, name string) (*model.Location, error) {
	var loc model.Location
	if err := r.locations.FindOne(ctx, bson.M{"name": name}).Decode(&loc); err != nil {
		return nil, translate(err)
	}
	return &loc, nil
}

// UpsertLocation inserts or replaces the location with the same name.
func (r *CatalogRepository) UpsertLocation(ctx context.Context, loc *model.Location) error {
	loc.UpdatedAt = time.Now().UTC()
	_, err := r.locations.ReplaceOne(ctx, bson.M{"name": loc.Name}, loc, options.Replace().SetUpsert(true))
	return translate(err)
}

// DeleteLocation returns ErrNotFound when nothing was deleted.
func (r *CatalogRepository) DeleteLocation(ctx context.Context, name string) error {
	res, err := r.locations.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPallets returns every pallet sorted by name.
func (r *CatalogRepository) ListPallets(ctx context.Context) ([]model.Pallet, error) {
	cursor, err := r.pallets.Find(ctx, bson.M{}, byName)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	pallets := []model.Pallet{}
	if err := cursor.All(ctx, &pallets); err != nil {
		return nil, err
	}
	return pallets, nil
}

// GetPallet returns ErrNotFound when name is unknown.
func (r *CatalogRepository) GetPallet(ctx context.Context, name string) (*model.Pallet, error) {
	var p model.Pallet
	if err := r.pallets.FindOne(ctx, bson.M{"name": name}).Decode(&p); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// UpsertPallet inserts or replaces the pallet with the same name.
func (r *CatalogRepository) UpsertPallet(ctx context.Context, p *model.Pallet) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.pallets.ReplaceOne(ctx, bson.M{"name": p.Name}, p, options.Replace().SetUpsert(true))
	return translate(err)
}

// DeletePallet returns ErrNotFound when nothing was deleted.
func (r *CatalogRepository) DeletePallet(ctx context.Context, name string) error {
	res, err := r.pallets.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Seed inserts the given entries whose names are not stored yet. Existing
// documents are left untouched so operator edits survive restarts.
func (r *CatalogRepository) Seed(ctx context.Context, locations []model.Location, pallets []model.Pallet) (int, error) {
	now := time.Now().UTC()
	var writes int

	for _, loc := range locations {
		loc.UpdatedAt = now
		res, err := r.locations.UpdateOne(ctx,
			bson.M{"name": loc.Name},
			bson.M{"$setOnInsert": loc},
			options.Update().SetUpsert(true))
		if err != nil {
			return writes, translate(err)
		}
		if res.UpsertedCount > 0 {
			writes++
		}
	}
	for _, p := range pallets {
		p.UpdatedAt = now
		res, err := r.pallets.UpdateOne(ctx,
			bson.M{"name": p.Name},
			bson.M{"$setOnInsert": p},
			options.Update().SetUpsert(true))
		if err != nil {
			return writes, translate(err)
		}
		if res.UpsertedCount > 0 {
			writes++
		}
	}
	return writes, nil
}
