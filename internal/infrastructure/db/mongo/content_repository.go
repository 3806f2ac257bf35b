package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thevittavardhan/backend/internal/core/domain"
	"github.com/thevittavardhan/backend/internal/core/ports"
)

const (
	blogsCollection        = "blogs"
	testimonialsCollection = "testimonials"
	clientsCollection      = "clients"
)

// ContentRepository serves the read-only marketing listings. These records
// are written out of band (CMS import scripts), never through this API.
type ContentRepository struct {
	blogs        *mongo.Collection
	testimonials *mongo.Collection
	clients      *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		blogs:        db.Collection(blogsCollection),
		testimonials: db.Collection(testimonialsCollection),
		clients:      db.Collection(clientsCollection),
	}
}

func (r *ContentRepository) ListBlogs(ctx context.Context, filter ports.BlogFilter) ([]*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.Category != "" && filter.Category != "all" {
		q["category"] = filter.Category
	}
	if filter.Featured {
		q["featured"] = true
	}
	if filter.Search != "" {
		rx := bson.M{"$regex": filter.Search, "$options": "i"}
		q["$or"] = []bson.M{{"title": rx}, {"content": rx}, {"tags": rx}}
	}

	cur, err := r.blogs.Find(ctx, q, sortByDateDesc)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	blogs := []*domain.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *ContentRepository) ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.testimonials.Find(ctx, bson.M{"approved": true}, sortByDateDesc)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)

	testimonials := []*domain.Testimonial{}
	if err := cur.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	return testimonials, nil
}

func (r *ContentRepository) ListClients(ctx context.Context, filter ports.ClientFilter) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.Industry != "" && filter.Industry != "all" {
		q["industry"] = filter.Industry
	}
	if filter.Featured {
		q["featured"] = true
	}
	if filter.Search != "" {
		rx := bson.M{"$regex": filter.Search, "$options": "i"}
		q["$or"] = []bson.M{{"name": rx}, {"description": rx}, {"location": rx}}
	}

	// Featured clients lead the listing, newest first within each group.
	sort := options.Find().SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "date", Value: -1}})

	cur, err := r.clients.Find(ctx, q, sort)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	clients := []*domain.Client{}
	if err := cur.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}
