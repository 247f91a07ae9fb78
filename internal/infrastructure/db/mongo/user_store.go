package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
)

const (
	usersCollection = "users"
	rolesCollection = "roles"
)

// Lockout abstracts the failed-login tracker (Redis). A nil Lockout
// disables lockout entirely.
type Lockout interface {
	IsLockedOut(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// UserStore persists accounts in MongoDB and owns password hashing,
// password policy enforcement, and lockout. A unique index on the
// normalized email is the authority on email uniqueness; callers'
// pre-checks are only an optimization.
type UserStore struct {
	users   *mongo.Collection
	roles   *mongo.Collection
	policy  PasswordPolicy
	lockout Lockout
}

func NewUserStore(db *mongo.Database, policy PasswordPolicy, lockout Lockout) *UserStore {
	return &UserStore{
		users:   db.Collection(usersCollection),
		roles:   db.Collection(rolesCollection),
		policy:  policy,
		lockout: lockout,
	}
}

type userDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	NormalizedEmail string             `bson:"normalized_email"`
	Username        string             `bson:"username"`
	PasswordHash    string             `bson:"password_hash"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	PhoneNumber     string             `bson:"phone_number,omitempty"`
	IsActive        bool               `bson:"is_active"`
	SecurityStamp   string             `bson:"security_stamp"`
	Roles           []string           `bson:"roles"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

type roleDoc struct {
	Name string `bson:"name"`
}

// EnsureIndexes creates the unique email index. Must run before the
// store serves traffic: concurrent registrations with the same email
// are resolved here, not by the callers' check-then-act sequence.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "normalized_email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	_, err = db.Collection(rolesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create role index: %w", err)
	}
	return nil
}

// EnsureRoles seeds the known role set, skipping roles that already exist.
func EnsureRoles(ctx context.Context, db *mongo.Database, roles []string) error {
	coll := db.Collection(rolesCollection)
	for _, role := range roles {
		_, err := coll.UpdateOne(ctx,
			bson.M{"name": role},
			bson.M{"$setOnInsert": roleDoc{Name: role}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", role, err)
		}
	}
	return nil
}

// Create validates the password against the policy, hashes it, and
// inserts the account. Policy violations and duplicate emails are
// reported as *domain.AccountError.
func (s *UserStore) Create(ctx context.Context, user *domain.User, password string) error {
	if violations := s.policy.Validate(password); len(violations) > 0 {
		return &domain.AccountError{Descriptions: violations}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	doc := userDoc{
		Email:           user.Email,
		NormalizedEmail: normalizeEmail(user.Email),
		Username:        user.Username,
		PasswordHash:    string(hash),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		PhoneNumber:     user.PhoneNumber,
		IsActive:        user.IsActive,
		SecurityStamp:   user.SecurityStamp,
		Roles:           []string{},
		CreatedAt:       user.CreatedAt.Unix(),
		UpdatedAt:       user.UpdatedAt.Unix(),
	}

	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.AccountError{
				Descriptions: []string{fmt.Sprintf("Email '%s' is already taken.", user.Email)},
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.PasswordHash = string(hash)
	return nil
}

// FindByEmail looks up an account case-insensitively. Returns
// domain.ErrUserNotFound when no account exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"normalized_email": normalizeEmail(email)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// CheckPassword verifies the plaintext against the stored hash. A locked
// out account fails verification without touching the hash, so callers
// cannot tell lockout apart from a wrong password.
func (s *UserStore) CheckPassword(ctx context.Context, user *domain.User, password string) (bool, error) {
	if s.lockout != nil {
		locked, err := s.lockout.IsLockedOut(ctx, user.Email)
		if err != nil {
			return false, fmt.Errorf("lockout check: %w", err)
		}
		if locked {
			return false, nil
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.lockout != nil {
			if err := s.lockout.RecordFailure(ctx, user.Email); err != nil {
				return false, fmt.Errorf("record failed attempt: %w", err)
			}
		}
		return false, nil
	}

	if s.lockout != nil {
		if err := s.lockout.Reset(ctx, user.Email); err != nil {
			return false, fmt.Errorf("reset failed attempts: %w", err)
		}
	}
	return true, nil
}

// GetRoles returns the account's roles in stored order.
func (s *UserStore) GetRoles(ctx context.Context, user *domain.User) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	var doc userDoc
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	return doc.Roles, nil
}

// AddToRole assigns a known role to the account. Unknown roles are
// reported as *domain.AccountError; assigning an already-held role is
// a no-op.
func (s *UserStore) AddToRole(ctx context.Context, user *domain.User, role string) error {
	n, err := s.roles.CountDocuments(ctx, bson.M{"name": role})
	if err != nil {
		return fmt.Errorf("look up role: %w", err)
	}
	if n == 0 {
		return &domain.AccountError{
			Descriptions: []string{fmt.Sprintf("Role '%s' does not exist.", role)},
		}
	}

	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}

	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$addToSet": bson.M{"roles": role},
			"$set":      bson.M{"updated_at": time.Now().UTC().Unix()},
		},
	)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Username:      d.Username,
		PasswordHash:  d.PasswordHash,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		PhoneNumber:   d.PhoneNumber,
		IsActive:      d.IsActive,
		SecurityStamp: d.SecurityStamp,
		Roles:         d.Roles,
		CreatedAt:     unixToTime(d.CreatedAt),
		UpdatedAt:     unixToTime(d.UpdatedAt),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
