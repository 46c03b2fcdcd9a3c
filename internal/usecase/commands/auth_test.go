//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomfinder/internal/domain/user"
	"roomfinder/internal/infra"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/pkg/jwt"
	"roomfinder/internal/pkg/password"
	"roomfinder/internal/usecase/commands"
	"roomfinder/internal/usecase/shared"
	"roomfinder/tests/common/builder"
	queriesmock "roomfinder/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mocks      *uowMocks
	readStore  *queriesmock.MockUserReadStore
	jwtService *jwt.Service
	commands   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mocks = newUowMocks(s.mockCtrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.jwtService = jwt.NewService("unit-test-secret", 15*time.Minute, 24*time.Hour)
	s.commands = commands.NewAuthCommands(s.mocks.uow, s.readStore, s.jwtService, clock.NewMockClock(fixedNow))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	in := commands.RegisterInput{
		FullName: "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "password123",
		Role:     string(user.RoleSeller),
		Phone:    "+91 98200 00000",
	}
	notFound := infra.WrapRepoErr("user not found", nil, infra.KindNotFound)

	s.Run("success: creates a normalised user", func() {
		newID := uuid.New()
		s.mocks.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound).Times(1)
		s.mocks.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (uuid.UUID, error) {
				s.Equal("asha@example.com", u.Email().Value())
				s.Equal(user.RoleSeller, u.Role())
				s.Equal("+919820000000", u.Phone().Value())
				s.NoError(password.ComparePassword(u.PasswordHash(), in.Password))
				s.Equal(fixedNow, u.CreatedAt())
				return newID, nil
			}).Times(1)

		result, err := s.commands.Register(context.Background(), in)
		s.Require().NoError(err)
		s.Equal(newID, result.UserID)
	})

	s.Run("error: email already registered", func() {
		s.mocks.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).
			Return(&shared.UserSnapshot{ID: uuid.New(), Email: "asha@example.com"}, nil).Times(1)
		s.mocks.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands.Register(context.Background(), in)
		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("error: concurrent registration loses on the unique index", func() {
		s.mocks.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, notFound).Times(1)
		s.mocks.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to insert user", nil, infra.KindDuplicateKey)).Times(1)

		_, err := s.commands.Register(context.Background(), in)
		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("error: invalid input never reaches the database", func() {
		cases := []struct {
			name   string
			mutate func(*commands.RegisterInput)
			errIs  error
		}{
			{name: "bad email", mutate: func(i *commands.RegisterInput) { i.Email = "nope" }, errIs: user.ErrInvalidEmail},
			{name: "short password", mutate: func(i *commands.RegisterInput) { i.Password = "short" }, errIs: user.ErrPasswordTooWeak},
			{name: "unknown role", mutate: func(i *commands.RegisterInput) { i.Role = "Admin" }, errIs: user.ErrInvalidRole},
			{name: "blank name", mutate: func(i *commands.RegisterInput) { i.FullName = "" }, errIs: user.ErrInvalidFullName},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				bad := in
				tc.mutate(&bad)

				_, err := s.commands.Register(context.Background(), bad)
				s.True(errs.Is(err, commands.ErrRegistrationInvalid))
				s.True(errs.Is(err, tc.errIs))
			})
		}
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	s.Require().NoError(err)
	view := builder.NewUserBuilder().BuildReadModel()
	creds, err := builder.NewAuthBuilder().BuildCredentials()
	s.Require().NoError(err)

	s.Run("success: issues a token pair and stamps last login", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(view, hash, nil).Times(1)
		s.mocks.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID, fixedNow).Return(nil).Times(1)

		result, err := s.commands.Login(context.Background(), creds)
		s.Require().NoError(err)
		s.Equal(view.ID, result.UserID)
		s.Equal(user.RoleTaker, result.Role)

		claims, err := s.jwtService.ValidateToken(result.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
		s.Equal(view.ID, claims.UserID)

		refresh, err := s.jwtService.ValidateToken(result.TokenPair.RefreshToken)
		s.Require().NoError(err)
		s.Equal(jwt.TokenTypeRefresh, refresh.TokenType)
	})

	s.Run("success: last login failure does not fail the login", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil).Times(1)
		s.mocks.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset")).Times(1)

		result, err := s.commands.Login(context.Background(), creds)
		s.Require().NoError(err)
		s.NotEmpty(result.TokenPair.AccessToken)
	})

	s.Run("error: unknown email looks like a wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Login(context.Background(), creds)
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: wrong password", func() {
		other, err := password.HashPasswordWithCost("different-password", bcrypt.MinCost)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, other, nil).Times(1)

		_, err = s.commands.Login(context.Background(), creds)
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: inactive account", func() {
		inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(inactive, hash, nil).Times(1)

		_, err := s.commands.Login(context.Background(), creds)
		s.True(errs.Is(err, commands.ErrUserInactive))
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	view := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: rotates both tokens", func() {
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, user.RoleTaker)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		pair, err := s.commands.RefreshToken(context.Background(), refresh)
		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEqual(refresh, pair.RefreshToken)
	})

	s.Run("error: access token is not accepted", func() {
		access, err := s.jwtService.GenerateAccessToken(view.ID, user.RoleTaker)
		s.Require().NoError(err)

		_, err = s.commands.RefreshToken(context.Background(), access)
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("error: garbage token", func() {
		_, err := s.commands.RefreshToken(context.Background(), "not-a-jwt")
		s.True(errs.Is(err, commands.ErrTokenValidation))
	})

	s.Run("error: user deleted since issue", func() {
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, user.RoleTaker)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err = s.commands.RefreshToken(context.Background(), refresh)
		s.True(errs.Is(err, commands.ErrUserNotFound))
	})

	s.Run("error: user deactivated since issue", func() {
		inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
		refresh, err := s.jwtService.GenerateRefreshToken(inactive.ID, user.RoleTaker)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), inactive.ID).Return(inactive, nil).Times(1)

		_, err = s.commands.RefreshToken(context.Background(), refresh)
		s.True(errs.Is(err, commands.ErrUserInactive))
	})
}
