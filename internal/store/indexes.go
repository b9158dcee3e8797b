package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes backing the registry's uniqueness
// invariants. Safe to call on every startup; Mongo treats re-creation of an
// identical index as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	orgIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_name"),
		},
		{
			Keys:    bson.D{{Key: "partition_name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_partition_name"),
		},
		{
			Keys:    bson.D{{Key: "admin_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_admin_id"),
		},
	}
	if _, err := db.Collection(orgCollection).Indexes().CreateMany(ctx, orgIndexes); err != nil {
		return err
	}

	adminIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	}
	if _, err := db.Collection(adminCollection).Indexes().CreateMany(ctx, adminIndexes); err != nil {
		return err
	}
	return nil
}
