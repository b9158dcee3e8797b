package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/landlord/internal/auth"
	"github.com/Harshitk-cp/landlord/internal/domain"
	"github.com/Harshitk-cp/landlord/internal/metrics"
	"github.com/Harshitk-cp/landlord/internal/store"
)

var (
	ErrDuplicateName  = errors.New("organization with this name already exists")
	ErrDuplicateEmail = errors.New("admin with this email already exists")
	ErrOrgNotFound    = errors.New("organization not found")
	ErrNotAuthorized  = errors.New("not authorized for this organization")
)

type OrgService struct {
	registry   domain.Registry
	partitions domain.PartitionManager
	hasher     *auth.PasswordHasher
	locks      *nameLock
	logger     *zap.Logger
}

func NewOrgService(r domain.Registry, p domain.PartitionManager, h *auth.PasswordHasher, logger *zap.Logger) *OrgService {
	return &OrgService{
		registry:   r,
		partitions: p,
		hasher:     h,
		locks:      newNameLock(),
		logger:     logger,
	}
}

// Create registers an organization with its admin and provisions an empty
// partition. Writes happen in order admin, organization, partition; a failure
// partway leaves the earlier writes in place and returns the error.
func (s *OrgService) Create(ctx context.Context, name, email, password string) (*domain.Organization, error) {
	partition := domain.PartitionName(name)
	s.locks.lock(partition)
	defer s.locks.unlock(partition)

	if _, err := s.registry.FindOrgByName(ctx, name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if _, err := s.registry.FindAdminByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	// Distinct names can normalize to the same partition, so the derived
	// name is checked too.
	if _, err := s.registry.FindOrgByPartition(ctx, partition); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{Email: email, PasswordHash: hash}
	if err := s.registry.InsertAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	org := &domain.Organization{
		Name:          name,
		PartitionName: partition,
		AdminID:       admin.ID,
		AdminEmail:    email,
	}
	if err := s.registry.InsertOrg(ctx, org); err != nil {
		if errors.Is(err, store.ErrConflict) {
			s.logger.Warn("organization insert conflict left an orphan admin",
				zap.String("org", name),
				zap.String("admin_id", admin.ID.Hex()),
			)
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	if err := s.partitions.Create(ctx, partition, name); err != nil {
		s.logger.Error("partition create failed after registry writes",
			zap.String("org", name),
			zap.String("partition", partition),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("organization created",
		zap.String("org", name),
		zap.String("partition", partition),
	)
	return org, nil
}

func (s *OrgService) Get(ctx context.Context, name string) (*domain.Organization, error) {
	org, err := s.registry.FindOrgByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return org, nil
}

// authorize re-checks that the caller's admin record still exists and owns
// org. Claims identify the caller; ownership comes from the registry, so a
// token minted for a deleted organization cannot act on a later one that
// reused its name.
func (s *OrgService) authorize(ctx context.Context, claims *domain.Claims, org *domain.Organization) error {
	adminID, err := primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		return ErrNotAuthorized
	}
	admin, err := s.registry.FindAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotAuthorized
		}
		return err
	}
	if admin.ID != org.AdminID {
		return ErrNotAuthorized
	}
	return nil
}

type UpdateParams struct {
	Name     string
	Email    string
	Password string
}

// Update replaces the organization's name and admin credentials. The admin
// record is always rewritten with a fresh password hash, even when the values
// are unchanged. A rename that changes the partition name migrates every
// document to the new partition and drops the old one; a rename that
// normalizes to the same partition skips migration.
func (s *OrgService) Update(ctx context.Context, orgName string, p UpdateParams, claims *domain.Claims) (*domain.Organization, error) {
	if claims == nil || claims.OrgName != orgName {
		return nil, ErrNotAuthorized
	}

	oldPartition := domain.PartitionName(orgName)
	newPartition := domain.PartitionName(p.Name)
	s.locks.lockPair(oldPartition, newPartition)
	defer s.locks.unlockPair(oldPartition, newPartition)

	org, err := s.registry.FindOrgByName(ctx, orgName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if err := s.authorize(ctx, claims, org); err != nil {
		return nil, err
	}

	renamed := p.Name != org.Name
	migrated := newPartition != org.PartitionName

	if renamed {
		if _, err := s.registry.FindOrgByName(ctx, p.Name); err == nil {
			return nil, ErrDuplicateName
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}

	if migrated {
		if _, err := s.registry.FindOrgByPartition(ctx, newPartition); err == nil {
			return nil, ErrDuplicateName
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}

		if err := s.partitions.Migrate(ctx, org.PartitionName, newPartition, p.Name); err != nil {
			s.logger.Error("partition migration failed",
				zap.String("org", org.Name),
				zap.String("old_partition", org.PartitionName),
				zap.String("new_partition", newPartition),
				zap.Error(err),
			)
			return nil, err
		}
		metrics.PartitionMigrations.Inc()
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, err
	}
	if err := s.registry.UpdateAdmin(ctx, org.AdminID, p.Email, hash); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	if err := s.registry.UpdateOrg(ctx, org.ID, p.Name, newPartition, p.Email); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateName
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}

	s.logger.Info("organization updated",
		zap.String("org", p.Name),
		zap.Bool("renamed", renamed),
		zap.Bool("migrated", migrated),
	)
	return s.Get(ctx, p.Name)
}

// Delete removes the partition first, then the admin, then the organization
// record. A failure partway leaves the remaining records in place.
func (s *OrgService) Delete(ctx context.Context, name string, claims *domain.Claims) error {
	if claims == nil || claims.OrgName != name {
		return ErrNotAuthorized
	}

	partition := domain.PartitionName(name)
	s.locks.lock(partition)
	defer s.locks.unlock(partition)

	org, err := s.registry.FindOrgByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrgNotFound
		}
		return err
	}
	if err := s.authorize(ctx, claims, org); err != nil {
		return err
	}

	if err := s.partitions.Drop(ctx, org.PartitionName); err != nil {
		s.logger.Error("partition drop failed",
			zap.String("org", name),
			zap.String("partition", org.PartitionName),
			zap.Error(err),
		)
		return err
	}
	if err := s.registry.DeleteAdmin(ctx, org.AdminID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if err := s.registry.DeleteOrg(ctx, org.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	s.logger.Info("organization deleted",
		zap.String("org", name),
		zap.String("partition", org.PartitionName),
	)
	return nil
}
