package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registry is the master record of organizations and their admins. It has no
// knowledge of partition contents; provisioning side effects belong to
// PartitionManager.
type Registry interface {
	InsertOrg(ctx context.Context, o *Organization) error
	FindOrgByName(ctx context.Context, name string) (*Organization, error)
	FindOrgByPartition(ctx context.Context, partitionName string) (*Organization, error)
	FindOrgByAdminID(ctx context.Context, adminID primitive.ObjectID) (*Organization, error)
	UpdateOrg(ctx context.Context, id primitive.ObjectID, name, partitionName, adminEmail string) error
	DeleteOrg(ctx context.Context, id primitive.ObjectID) error

	InsertAdmin(ctx context.Context, a *Admin) error
	FindAdminByEmail(ctx context.Context, email string) (*Admin, error)
	FindAdminByID(ctx context.Context, id primitive.ObjectID) (*Admin, error)
	UpdateAdmin(ctx context.Context, id primitive.ObjectID, email, passwordHash string) error
	DeleteAdmin(ctx context.Context, id primitive.ObjectID) error
}

// PartitionManager provisions, renames and destroys per-organization
// partition collections.
type PartitionManager interface {
	// Create initializes a partition with its metadata document.
	Create(ctx context.Context, partitionName, orgName string) error
	// Migrate copies every document from oldName to newName in natural
	// order, rewriting the metadata document's organization name, then
	// drops oldName. Partial failure leaves both partitions in place.
	Migrate(ctx context.Context, oldName, newName, orgName string) error
	// Drop removes a partition and all its documents. Dropping a partition
	// that does not exist is not an error.
	Drop(ctx context.Context, partitionName string) error
}
