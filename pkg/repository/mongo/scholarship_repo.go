package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

const collectionName = "scholarships"

type document struct {
	ID          string `bson:"_id"`
	Position    int    `bson:"position"`
	Name        string `bson:"name"`
	Amount      string `bson:"amount"`
	Deadline    string `bson:"deadline"`
	Link        string `bson:"link,omitempty"`
	Source      string `bson:"source"`
	Description string `bson:"description,omitempty"`
	Eligibility string `bson:"eligibility,omitempty"`
}

// ScholarshipRepository keeps the catalog in a MongoDB collection.
type ScholarshipRepository struct {
	coll *mongo.Collection
}

func NewScholarshipRepository(db *mongo.Database) *ScholarshipRepository {
	return &ScholarshipRepository{coll: db.Collection(collectionName)}
}

func (r *ScholarshipRepository) ListAll(ctx context.Context) ([]scholarship.Scholarship, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	res := make([]scholarship.Scholarship, 0, len(docs))
	for _, d := range docs {
		s := scholarship.Scholarship{
			Name:        d.Name,
			Amount:      d.Amount,
			Deadline:    d.Deadline,
			Link:        d.Link,
			Source:      d.Source,
			Description: d.Description,
			Eligibility: d.Eligibility,
		}
		if id, err := uuid.Parse(d.ID); err == nil {
			s.ID = id
		}
		res = append(res, s.WithID())
	}
	return res, nil
}

// ReplaceAll deletes every document and inserts items. Without a replica
// set there is no transaction, so a concurrent reader may briefly see an
// empty collection.
func (r *ScholarshipRepository) ReplaceAll(ctx context.Context, items []scholarship.Scholarship) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear collection: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for i, it := range items {
		it = it.WithID()
		docs = append(docs, document{
			ID:          it.ID.String(),
			Position:    i,
			Name:        it.Name,
			Amount:      it.Amount,
			Deadline:    it.Deadline,
			Link:        it.Link,
			Source:      it.Source,
			Description: it.Description,
			Eligibility: it.Eligibility,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert documents: %w", err)
	}
	return nil
}
