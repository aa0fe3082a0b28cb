package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zottaemp/timeclock-api/internal/core/domain"
)

const collectionEntries = "work_entries"

// openFilter matches entries that have not been clocked out yet. EndTime is
// omitted from the document while the entry is open.
var openFilter = bson.M{"$exists": false}

// WorkEntryRepository persists work entries with per-record updates, so two
// concurrent clock-outs can no longer overwrite each other the way a
// whole-collection rewrite would.
type WorkEntryRepository struct {
	col *mongo.Collection
}

func NewWorkEntryRepository(db *mongo.Database) *WorkEntryRepository {
	return &WorkEntryRepository{col: db.Collection(collectionEntries)}
}

// Insert appends a new work entry document.
func (r *WorkEntryRepository) Insert(ctx context.Context, e *domain.WorkEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return err
}

// Update replaces the entry with the same ID in place.
func (r *WorkEntryRepository) Update(ctx context.Context, e *domain.WorkEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// FindOpen retrieves the open entry matching both ID and owner.
func (r *WorkEntryRepository) FindOpen(ctx context.Context, entryID, userID string) (*domain.WorkEntry, error) {
	return r.findOne(ctx, bson.M{"_id": entryID, "user_id": userID, "end_time": openFilter})
}

// FindOpenByUser retrieves the employee's open entry, if any.
func (r *WorkEntryRepository) FindOpenByUser(ctx context.Context, userID string) (*domain.WorkEntry, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "end_time": openFilter})
}

// FindByID retrieves a single entry regardless of state.
func (r *WorkEntryRepository) FindByID(ctx context.Context, entryID string) (*domain.WorkEntry, error) {
	return r.findOne(ctx, bson.M{"_id": entryID})
}

func (r *WorkEntryRepository) findOne(ctx context.Context, filter bson.M) (*domain.WorkEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.WorkEntry
	err := r.col.FindOne(ctx, filter).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListByUser returns all entries for an employee. Ordering is applied by the
// service layer so that every backend shares the same semantics.
func (r *WorkEntryRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkEntry, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

// ListAll returns every entry.
func (r *WorkEntryRepository) ListAll(ctx context.Context) ([]domain.WorkEntry, error) {
	return r.list(ctx, bson.M{})
}

func (r *WorkEntryRepository) list(ctx context.Context, filter bson.M) ([]domain.WorkEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.WorkEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureIndexes creates necessary indexes on the work_entries collection.
func (r *WorkEntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
