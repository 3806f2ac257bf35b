package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

const (
	contactsCollection = "contacts"
	careersCollection  = "careers"
)

// submissionQuery builds the common filter document. Search becomes a
// case-insensitive regex OR over the given fields.
func submissionQuery(f ports.SubmissionFilter, searchFields []string) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Search != "" {
		or := make([]bson.M, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: bson.M{"$regex": f.Search, "$options": "i"}})
		}
		q["$or"] = or
	}
	return q
}

var sortByDateDesc = options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

// returnUpdated makes FindOneAndUpdate return the post-update document.
var returnUpdated = options.FindOneAndUpdate().SetReturnDocument(options.After)

// ContactRepository persists contact submissions in the contacts collection.
// Status updates and deletes are single-document operations, so concurrent
// writes to the same record serialize inside MongoDB with last-write-wins
// and writes to different records never contend.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context, filter ports.SubmissionFilter) ([]*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, submissionQuery(filter, []string{"name", "email", "message"}), sortByDateDesc)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	contacts := []*domain.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Contact
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		returnUpdated,
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return &c, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// CareerRepository persists career applications in the careers collection.
type CareerRepository struct {
	coll *mongo.Collection
}

func NewCareerRepository(db *mongo.Database) *CareerRepository {
	return &CareerRepository{coll: db.Collection(careersCollection)}
}

func (r *CareerRepository) Create(ctx context.Context, c *domain.Career) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert career: %w", err)
	}
	return nil
}

func (r *CareerRepository) List(ctx context.Context, filter ports.SubmissionFilter) ([]*domain.Career, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, submissionQuery(filter, []string{"name", "email", "position"}), sortByDateDesc)
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	defer cur.Close(ctx)

	careers := []*domain.Career{}
	if err := cur.All(ctx, &careers); err != nil {
		return nil, fmt.Errorf("decode careers: %w", err)
	}
	return careers, nil
}

func (r *CareerRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Career, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Career
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		returnUpdated,
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCareerNotFound
		}
		return nil, fmt.Errorf("update career status: %w", err)
	}
	return &c, nil
}

func (r *CareerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete career: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCareerNotFound
	}
	return nil
}
