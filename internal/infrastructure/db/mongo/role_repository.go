package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

const collectionRoles = "roles"

type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

type mongoRole struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description"`
	Level        int                `bson:"level"`
	Permissions  []string           `bson:"permissions"`
	Pages        []string           `bson:"pages"`
	IsSystemRole bool               `bson:"is_system_role"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toMongoRole(r *domain.Role) mongoRole {
	return mongoRole{
		Name:         r.Name,
		Description:  r.Description,
		Level:        r.Level,
		Permissions:  r.Permissions,
		Pages:        r.Pages,
		IsSystemRole: r.IsSystemRole,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m mongoRole) toDomain() *domain.Role {
	return &domain.Role{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Description:  m.Description,
		Level:        m.Level,
		Permissions:  m.Permissions,
		Pages:        m.Pages,
		IsSystemRole: m.IsSystemRole,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Create inserts a new role document. The unique index on name turns a
// concurrent duplicate into ErrDuplicateRole.
func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoRole(role))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRole
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	created := *role
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m mongoRole
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m mongoRole
	err := r.col.FindOne(ctx, bson.M{"name": domain.NormalizeRoleName(name)}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "level", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cur.Close(ctx)

	var roles []domain.Role
	for cur.Next(ctx) {
		var m mongoRole
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, *m.toDomain())
	}
	return roles, cur.Err()
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	oid, err := primitive.ObjectIDFromHex(role.ID)
	if err != nil {
		return domain.ErrRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoRole(role))
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name index backing the one-role-per-name
// invariant.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
