package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	mockRepo "salesapi/internal/mocks/repository"
	mockSvc "salesapi/internal/mocks/service"
	"salesapi/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Login:    "ana",
		Name:     "Ana Torres",
		Password: "plaintext-secret",
		Role:     "SALESPERSON",
	}

	fx.userRepo.On("FindByLogin", ctx, "ana").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "plaintext-secret").Return("$2a$10$hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = "64f000000000000000000001"
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ana", user.Login)
	assert.Equal(t, "$2a$10$hashed", user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Register_DuplicateLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: "64f000000000000000000001", Login: "ana"}

	fx.userRepo.On("FindByLogin", ctx, "ana").Return(existing, nil)

	user, err := fx.service.Register(ctx, &usecase.CreateUserInput{
		Login:    "ana",
		Name:     "Another Ana",
		Password: "whatever",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateLogin))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: "64f000000000000000000001", Login: "ana", PasswordHash: "$2a$10$hashed"}

	fx.userRepo.On("FindByLogin", ctx, "ana").Return(stored, nil)
	fx.hasher.On("Check", "plaintext-secret", "$2a$10$hashed").Return(true)
	fx.tokenService.On("Generate", "ana").Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "ana", Password: "plaintext-secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestUserService_Login_UnknownLogin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByLogin", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrLoginNotFound))
}

func TestUserService_Login_BadCredential(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{Login: "ana", PasswordHash: "$2a$10$hashed"}

	fx.userRepo.On("FindByLogin", ctx, "ana").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "ana", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_CurrentUser_Anonymous(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.CurrentUser(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_CurrentUser_Identified(t *testing.T) {
	fx := createTestUserService(t)

	ctx := deliverycontext.WithIdentity(context.Background(), "ana")
	stored := &entity.User{ID: "64f000000000000000000001", Login: "ana"}

	fx.userRepo.On("FindByLogin", ctx, "ana").Return(stored, nil)

	user, err := fx.service.CurrentUser(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserService_CurrentUser_RecordGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := deliverycontext.WithIdentity(context.Background(), "ana")
	fx.userRepo.On("FindByLogin", ctx, "ana").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx)

	assert.NoError(t, err)
	assert.Nil(t, user)
}
