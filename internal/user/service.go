package user

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"hotelbooking/internal/auth"
	"hotelbooking/internal/events"
	"hotelbooking/internal/pkg/patch"
)

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int, error)
	Patch(ctx context.Context, id int64, doc json.RawMessage) (*User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo      Repository
	hasher    auth.PasswordHasher
	publisher events.Publisher
	log       zerolog.Logger
}

func NewService(repo Repository, hasher auth.PasswordHasher, publisher events.Publisher, log zerolog.Logger) Service {
	return &service{
		repo:      repo,
		hasher:    hasher,
		publisher: publisher,
		log:       log,
	}
}

func validate(u *User) error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !ValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if len(req.Password) < 8 {
		return nil, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         RoleUser,
	}
	if err := validate(u); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	events.Emit(s.publisher, s.log, events.TopicUserRegistration, events.UserRegistrationEvent{
		UserID: u.ID,
	})

	return u, nil
}

// Login returns the user on a correct username/password pair. A missing user
// and a wrong password produce the same error so the two are not
// distinguishable from the outside.
func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]*User, int, error) {
	return s.repo.List(ctx, page, pageSize)
}

// doc is the external representation used for merging sparse change-sets.
// Password is write-only: it never carries the stored hash, and only a
// non-empty value triggers a re-hash.
type doc struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *service) Patch(ctx context.Context, id int64, raw json.RawMessage) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := doc{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
	if err := patch.Apply(raw, &d); err != nil {
		return nil, err
	}

	u.Username = strings.TrimSpace(d.Username)
	u.Email = strings.TrimSpace(d.Email)
	u.Role = d.Role
	if d.Password != "" {
		if len(d.Password) < 8 {
			return nil, ErrWeakPassword
		}
		hash, err := s.hasher.Hash(d.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := validate(u); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
