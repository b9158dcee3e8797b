package store

import (
	"context"
	"errors"
	"time"

	"github.com/Harshitk-cp/landlord/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	orgCollection   = "organizations"
	adminCollection = "admins"
)

type RegistryStore struct {
	db *mongo.Database
}

func NewRegistryStore(db *mongo.Database) *RegistryStore {
	return &RegistryStore{db: db}
}

func (s *RegistryStore) orgs() *mongo.Collection   { return s.db.Collection(orgCollection) }
func (s *RegistryStore) admins() *mongo.Collection { return s.db.Collection(adminCollection) }

func (s *RegistryStore) InsertOrg(ctx context.Context, o *domain.Organization) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = nil
	if _, err := s.orgs().InsertOne(ctx, o); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *RegistryStore) FindOrgByName(ctx context.Context, name string) (*domain.Organization, error) {
	o := &domain.Organization{}
	err := s.orgs().FindOne(ctx, bson.M{"name": name}).Decode(o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *RegistryStore) FindOrgByPartition(ctx context.Context, partitionName string) (*domain.Organization, error) {
	o := &domain.Organization{}
	err := s.orgs().FindOne(ctx, bson.M{"partition_name": partitionName}).Decode(o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *RegistryStore) FindOrgByAdminID(ctx context.Context, adminID primitive.ObjectID) (*domain.Organization, error) {
	o := &domain.Organization{}
	err := s.orgs().FindOne(ctx, bson.M{"admin_id": adminID}).Decode(o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *RegistryStore) UpdateOrg(ctx context.Context, id primitive.ObjectID, name, partitionName, adminEmail string) error {
	res, err := s.orgs().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":           name,
			"partition_name": partitionName,
			"admin_email":    adminEmail,
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RegistryStore) DeleteOrg(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.orgs().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RegistryStore) InsertAdmin(ctx context.Context, a *domain.Admin) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = nil
	if _, err := s.admins().InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *RegistryStore) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a := &domain.Admin{}
	err := s.admins().FindOne(ctx, bson.M{"email": email}).Decode(a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *RegistryStore) FindAdminByID(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	a := &domain.Admin{}
	err := s.admins().FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *RegistryStore) UpdateAdmin(ctx context.Context, id primitive.ObjectID, email, passwordHash string) error {
	res, err := s.admins().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"email":         email,
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RegistryStore) DeleteAdmin(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.admins().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
