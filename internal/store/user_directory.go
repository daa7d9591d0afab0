package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// UserDirectory holds user records for the process lifetime.
type UserDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type userDirectory struct {
	mu           sync.RWMutex
	users        []domain.User
	uniqueEmails bool
	nextID       int64
}

// NewUserDirectory instantiates the in-memory directory. When
// uniqueEmails is set, Create rejects addresses already registered.
func NewUserDirectory(uniqueEmails bool) UserDirectory {
	return &userDirectory{uniqueEmails: uniqueEmails, nextID: 1}
}

func (d *userDirectory) List(ctx context.Context) ([]domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out, nil
}

func (d *userDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.users {
		if d.users[i].ID == id {
			user := d.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (d *userDirectory) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := range d.users {
		if strings.EqualFold(d.users[i].Email, email) {
			user := d.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (d *userDirectory) Create(ctx context.Context, user *domain.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// The id is consumed even when the create is rejected, so ids stay
	// strictly increasing across failed attempts.
	user.ID = d.nextID
	d.nextID++

	if d.uniqueEmails {
		for i := range d.users {
			if strings.EqualFold(d.users[i].Email, user.Email) {
				return ErrDuplicateEmail
			}
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	d.users = append(d.users, *user)
	return nil
}
