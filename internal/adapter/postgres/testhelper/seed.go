package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an editor with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleEditor)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         role,
		PasswordHash: "$2a$04$seeded",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}
	return user
}

// SeedModule creates an active system module.
func SeedModule(t *testing.T, pool *pgxpool.Pool, orderIndex int, public bool) domain.Module {
	t.Helper()

	m := domain.Module{
		ID:         uuid.New(),
		EntityKind: domain.EntityKindSystem,
		Name:       "Module " + uniqueSuffix(),
		OrderIndex: orderIndex,
		IsActive:   true,
		IsPublic:   public,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO modules (id, entity_kind, name, order_index, is_active, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, string(m.EntityKind), m.Name, m.OrderIndex, m.IsActive, m.IsPublic,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedModule insert: %v", err)
	}
	return m
}

// SeedField creates an active field in module. Options are required for select types.
func SeedField(t *testing.T, pool *pgxpool.Pool, moduleID uuid.UUID, fieldType domain.FieldType, options ...string) domain.Field {
	t.Helper()

	suffix := uniqueSuffix()
	if options == nil {
		options = []string{}
	}
	f := domain.Field{
		ID:         uuid.New(),
		ModuleID:   moduleID,
		EntityKind: domain.EntityKindSystem,
		Name:       "Field " + suffix,
		Key:        "f_" + suffix[:6],
		Type:       fieldType,
		Options:    options,
		IsActive:   true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO fields (id, module_id, entity_kind, name, field_key, field_type, options, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.ModuleID, string(f.EntityKind), f.Name, f.Key, string(f.Type), f.Options, f.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedField insert: %v", err)
	}
	return f
}

// SeedSystem creates a system with the given status.
func SeedSystem(t *testing.T, pool *pgxpool.Pool, createdBy *uuid.UUID, status domain.SystemStatus) domain.System {
	t.Helper()

	suffix := uniqueSuffix()
	s := domain.System{
		ID:        uuid.New(),
		Name:      "System " + suffix,
		Vendor:    "Vendor " + suffix,
		Size:      []string{"Małe"},
		Status:    status,
		CreatedBy: createdBy,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO systems (id, name, vendor, size, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Name, s.Vendor, s.Size, string(s.Status), s.CreatedBy,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSystem insert: %v", err)
	}
	return s
}
