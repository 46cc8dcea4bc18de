package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/entity"
	domainerrors "salesapi/internal/domain/errors"
	"salesapi/internal/domain/repository"
	"salesapi/internal/domain/service"
	"salesapi/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The login must be free; the supplied
// plaintext is hashed before anything touches the store.
func (srv *userService) Register(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	_, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, login taken", slog.String("login", input.Login))

		return nil, domainerrors.ErrDuplicateLogin.WrapMessage("login " + input.Login + " already taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check login availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash credential", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash credential")
	}

	user := &entity.User{
		Login:        input.Login,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User registered", slog.String("login", user.Login), slog.String("role", user.Role))

	return user, nil
}

// Login verifies the credential against the stored hash and issues a signed,
// time-limited bearer token embedding the login name.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown user", slog.String("login", input.Login))

			return nil, domainerrors.ErrLoginNotFound.WrapMessage("login " + input.Login)
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with bad credential", slog.String("login", input.Login))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("credential mismatch for " + input.Login)
	}

	token, err := srv.tokenService.Generate(user.Login)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.LoginOutput{Token: token}, nil
}

// CurrentUser resolves the identity the gateway attached to the request
// context. Anonymous requests and identities with no backing record both
// yield an empty result rather than an error.
func (srv *userService) CurrentUser(ctx context.Context) (*entity.User, error) {
	login := deliverycontext.GetIdentity(ctx)
	if login == "" {
		return nil, nil
	}

	user, err := srv.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
