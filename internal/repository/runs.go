package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// RunsRepository stores optimization run summaries.
type RunsRepository struct {
	collection *mongo.Collection
}

// NewRunsRepository creates a runs repository.
func NewRunsRepository(db *MongoDB) *RunsRepository {
	return &RunsRepository{collection: db.Runs}
}

// Create inserts a run and assigns its ObjectID.
func (r *RunsRepository) Create(ctx context.Context, run *model.OptimizationRun) error {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, run)
	return translate(err)
}

// FindByRunID returns ErrNotFound when no run has that id.
func (r *RunsRepository) FindByRunID(ctx context.Context, runID string) (*model.OptimizationRun, error) {
	var run model.OptimizationRun
	if err := r.collection.FindOne(ctx, bson.M{"run_id": runID}).Decode(&run); err != nil {
		return nil, translate(err)
	}
	return &run, nil
}

// Query returns runs newest first.
func (r *RunsRepository) Query(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, runFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	runs := []model.OptimizationRun{}
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// Count returns the number of runs matching the filters of opts.
func (r *RunsRepository) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, runFilter(opts))
}

func runFilter(opts model.RunQueryOptions) bson.M {
	filter := bson.M{}
	if opts.LocationName != "" {
		filter["location_name"] = opts.LocationName
	}
	if opts.UserID != "" {
		filter["user_id"] = opts.UserID
	}
	return filter
}
