package store

import (
	"context"

	"github.com/Harshitk-cp/landlord/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PartitionStore struct {
	db *mongo.Database
}

func NewPartitionStore(db *mongo.Database) *PartitionStore {
	return &PartitionStore{db: db}
}

func (s *PartitionStore) Create(ctx context.Context, partitionName, orgName string) error {
	// Inserting the metadata document creates the collection implicitly.
	_, err := s.db.Collection(partitionName).InsertOne(ctx, domain.NewPartitionMetadata(orgName))
	return err
}

func (s *PartitionStore) Migrate(ctx context.Context, oldName, newName, orgName string) error {
	src := s.db.Collection(oldName)
	dst := s.db.Collection(newName)

	cur, err := src.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	// Documents are copied one at a time in cursor order. A failure mid-copy
	// leaves both collections in place; there is no rollback.
	for cur.Next(ctx) {
		var doc bson.D
		if err := cur.Decode(&doc); err != nil {
			return err
		}
		if _, err := dst.InsertOne(ctx, migrateDoc(doc, orgName)); err != nil {
			return err
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	return src.Drop(ctx)
}

func (s *PartitionStore) Drop(ctx context.Context, partitionName string) error {
	return s.db.Collection(partitionName).Drop(ctx)
}

// migrateDoc strips the storage-assigned ID so the destination assigns a
// fresh one, and rewrites the organization name on the metadata document.
// Field order is preserved for all other fields.
func migrateDoc(doc bson.D, orgName string) bson.D {
	meta := false
	for _, e := range doc {
		if e.Key == "_type" && e.Value == domain.MetadataDocType {
			meta = true
			break
		}
	}

	out := make(bson.D, 0, len(doc))
	for _, e := range doc {
		switch {
		case e.Key == "_id":
			continue
		case meta && e.Key == "organization_name":
			out = append(out, bson.E{Key: e.Key, Value: orgName})
		default:
			out = append(out, e)
		}
	}
	return out
}
