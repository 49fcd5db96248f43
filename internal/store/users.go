package store

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the generic user resource, unrelated to auth accounts.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Age       *int      `bun:"age" json:"age"`
	CreatedAt time.Time `bun:"created_at,notnull,nullzero,default:current_timestamp" json:"createdAt"`
}

// Users is the repository for the user resource.
type Users struct {
	db *bun.DB
}

// NewUsers creates the users repository.
func NewUsers(db *bun.DB) *Users {
	return &Users{db: db}
}

// Create inserts a user record.
func (r *Users) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert user")
	}

	return user, nil
}

// List returns every user in creation order.
func (r *Users) List(ctx context.Context) ([]*User, error) {
	users := make([]*User, 0)
	err := r.db.NewSelect().
		Model(&users).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list users")
	}
	return users, nil
}

// DeleteAll wipes every user record. Test isolation hook.
func (r *Users) DeleteAll(ctx context.Context) error {
	_, err := r.db.NewDelete().
		Model((*User)(nil)).
		Where("1 = 1").
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete users")
	}
	return nil
}
