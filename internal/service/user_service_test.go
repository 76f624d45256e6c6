package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"recipeshare/internal/auth"
	apierrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newTestUserService(repo *MockUserRepository) UserService {
	return NewUserService(repo, auth.NewBcryptHasherWithCost(4), nil)
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		imageURL      string
		bio           string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			username: "marta",
			password: "secret",
			imageURL: "https://example.com/marta.png",
			bio:      "Weeknight cook.",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "marta").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing username wins over other missing fields",
			username:      "",
			password:      "",
			imageURL:      "",
			bio:           "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apierrors.ErrUsernameRequired,
		},
		{
			name:          "missing password",
			username:      "marta",
			password:      "",
			imageURL:      "",
			bio:           "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apierrors.ErrPasswordRequired,
		},
		{
			name:          "missing image URL",
			username:      "marta",
			password:      "secret",
			imageURL:      "",
			bio:           "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apierrors.ErrImageURLRequired,
		},
		{
			name:          "missing bio",
			username:      "marta",
			password:      "secret",
			imageURL:      "https://example.com/marta.png",
			bio:           "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apierrors.ErrBioRequired,
		},
		{
			name:     "duplicate username caught by pre-check",
			username: "taken",
			password: "secret",
			imageURL: "https://example.com/taken.png",
			bio:      "Bio.",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "taken").Return(&model.User{Username: "taken"}, nil)
			},
			expectedError: apierrors.ErrUsernameTaken,
		},
		{
			name:     "duplicate username caught at commit time",
			username: "raced",
			password: "secret",
			imageURL: "https://example.com/raced.png",
			bio:      "Bio.",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "raced").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(apierrors.ErrUsernameTaken)
			},
			expectedError: apierrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := newTestUserService(mockRepo)
			user, err := svc.Signup(context.Background(), tt.username, tt.password, tt.imageURL, tt.bio)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.imageURL, user.ImageURL)
				assert.Equal(t, tt.bio, user.Bio)
				assert.False(t, user.PasswordHash.IsZero())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_VerifyCredentials(t *testing.T) {
	hasher := auth.NewBcryptHasherWithCost(4)
	digest, err := hasher.Hash("right-password")
	assert.NoError(t, err)

	stored := &model.User{ID: 1, Username: "marta", PasswordHash: digest}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "correct credentials",
			username: "marta",
			password: "right-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "marta").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			username: "marta",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "marta").Return(stored, nil)
			},
			expectedError: apierrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "right-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apierrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, hasher, nil)
			user, err := svc.VerifyCredentials(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				// Unknown usernames and wrong passwords must be indistinguishable.
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_FindByID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	stored := &model.User{ID: 3, Username: "devon"}
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestUserService(mockRepo)

	user, err := svc.FindByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, stored, user)

	user, err = svc.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, user)
}
