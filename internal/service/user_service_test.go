package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"poppys/internal/auth"
	"poppys/internal/errors"
	"poppys/internal/model"
	"poppys/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, params repository.UpdateUserParams) (*model.User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id bson.ObjectID, role string) (*model.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CountByMonth(ctx context.Context) ([]model.MonthCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthCount), args.Error(1)
}

func (m *MockUserRepository) CountByWeek(ctx context.Context) ([]model.WeekCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WeekCount), args.Error(1)
}

func newTestTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)
	return tokens
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		setupMock   func(*MockUserRepository)
		wantExisted bool
		wantErr     bool
	}{
		{
			name:  "new registration creates the record",
			email: "a@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantExisted: false,
		},
		{
			name:  "existing email returns a credential without inserting",
			email: "a@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com"}, nil)
			},
			wantExisted: true,
		},
		{
			name:  "lost registration race still yields a credential",
			email: "a@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(errors.ErrUserExists)
			},
			wantExisted: true,
		},
		{
			name:  "store failure propagates",
			email: "a@x.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := newTestTokens(t)
			svc := NewUserService(mockRepo, tokens)

			token, existed, err := svc.Register(context.Background(), RegisterInput{Email: tt.email})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantExisted, existed)

				// the issued credential always decodes back to the claimed email
				claims, err := tokens.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, tt.email, claims.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Register_IdempotentPerEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com"}, nil).Once()

	tokens := newTestTokens(t)
	svc := NewUserService(mockRepo, tokens)

	_, existed, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, existed)

	token, existed, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.True(t, existed)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	// exactly one insert across both calls
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestUserService_Profile_UsesGivenIdentity(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com", Name: "A"}, nil)

	svc := NewUserService(mockRepo, newTestTokens(t))

	user, err := svc.Profile(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateRole(t *testing.T) {
	id := bson.NewObjectID()
	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateRole", mock.Anything, id, "admin").Return(&model.User{Email: "a@x.com", Role: "admin"}, nil)

	svc := NewUserService(mockRepo, newTestTokens(t))

	user, err := svc.UpdateRole(context.Background(), id, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	mockRepo.AssertExpectations(t)
}
