package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recipeshare/internal/auth"
	"recipeshare/internal/cache"
	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user directory operations.
type UserService interface {
	// Signup validates the fields in fixed order (username, password, image
	// URL, bio; first failure wins), rejects duplicate usernames, and persists
	// the user with a hashed password.
	Signup(ctx context.Context, username, password, imageURL, bio string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// VerifyCredentials returns the user only when the username exists and the
	// password matches. Unknown usernames and wrong passwords fail identically.
	VerifyCredentials(ctx context.Context, username, password string) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService. cache may be nil to disable profile
// caching.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Signup(ctx context.Context, username, password, imageURL, bio string) (*model.User, error) {
	switch {
	case username == "":
		return nil, apierrors.ErrUsernameRequired
	case password == "":
		return nil, apierrors.ErrPasswordRequired
	case imageURL == "":
		return nil, apierrors.ErrImageURLRequired
	case bio == "":
		return nil, apierrors.ErrBioRequired
	}

	// Pre-check is an optimization only; the unique index catches races.
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apierrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: digest,
		ImageURL:     imageURL,
		Bio:          bio,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.cacheUser(ctx, user)
	return user, nil
}

func (s *userService) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, s.cacheKey(id)); err == nil && data != nil {
			var user model.User
			if err := json.Unmarshal(data, &user); err == nil {
				return &user, nil
			}
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheUser(ctx, user)
	return user, nil
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) VerifyCredentials(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apierrors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apierrors.ErrInvalidCredentials
	}
	return user, nil
}

// cacheUser stores the public profile; the password digest marshals to
// nothing, so it never reaches the cache. Cache failures are ignored.
func (s *userService) cacheUser(ctx context.Context, user *model.User) {
	if s.cache == nil {
		return
	}
	if data, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(user.ID), data, userCacheTTL)
	}
}
