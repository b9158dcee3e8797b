package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartitionPrefix precedes every per-organization collection name so tenant
// partitions can never collide with registry collections.
const PartitionPrefix = "org_"

const (
	MetadataDocType        = "metadata"
	PartitionSchemaVersion = "1.0"
)

type Organization struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"organization_name"`
	PartitionName string             `bson:"partition_name" json:"collection_name"`
	AdminID       primitive.ObjectID `bson:"admin_id" json:"-"`
	AdminEmail    string             `bson:"admin_email" json:"admin_email"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time         `bson:"updated_at" json:"updated_at"`
}

// PartitionName derives the partition collection name for an organization
// name. Distinct names can normalize to the same partition ("Acme Inc" and
// "ACME inc"), so callers must treat the result as a reserved identifier.
func PartitionName(orgName string) string {
	return PartitionPrefix + strings.ReplaceAll(strings.ToLower(orgName), " ", "_")
}

// PartitionMetadata is the single marker document every partition starts with.
type PartitionMetadata struct {
	DocType          string    `bson:"_type" json:"_type"`
	OrganizationName string    `bson:"organization_name" json:"organization_name"`
	InitializedAt    time.Time `bson:"initialized_at" json:"initialized_at"`
	SchemaVersion    string    `bson:"schema_version" json:"schema_version"`
}

func NewPartitionMetadata(orgName string) PartitionMetadata {
	return PartitionMetadata{
		DocType:          MetadataDocType,
		OrganizationName: orgName,
		InitializedAt:    time.Now().UTC(),
		SchemaVersion:    PartitionSchemaVersion,
	}
}
