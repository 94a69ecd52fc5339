package admin

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/state"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/go-playground/validator/v10"
)

type UserAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type UserService interface {
	RefreshUsers(ctx context.Context) error
	UpdateStatus(ctx context.Context, userID int64, req *models.UpdateUserStatusRequest) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
	Users() ([]models.User, bool)
}

type userService struct {
	api       UserAPI
	validator *validator.Validate
	users     state.Latest[[]models.User]
}

func NewUserService(api UserAPI) UserService {
	return &userService{api: api, validator: validator.New()}
}

func (s *userService) RefreshUsers(ctx context.Context) error {

	ticket := s.users.Begin()

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("User refresh failed", slog.String("error", err.Error()))
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range users {
		users[i].Name = utils.CleanText(users[i].Name)
	}

	s.users.Apply(ticket, users)

	return nil
}

func (s *userService) UpdateStatus(ctx context.Context, userID int64, req *models.UpdateUserStatusRequest) (*models.User, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.api.UpdateUserStatus(ctx, userID, req.Status)
	if err != nil {
		logger.Error("User status update failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	user.Name = utils.CleanText(user.Name)

	logger.Info("User status updated", slog.Int64("user_id", userID), slog.String("status", string(req.Status)))

	_ = s.RefreshUsers(ctx)

	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID int64) error {

	logger := middleware.LoggerFromContext(ctx)

	if userID <= 0 {
		return appErrors.BadRequestError("Invalid user ID")
	}

	if err := s.api.DeleteUser(ctx, userID); err != nil {
		logger.Error("User deletion failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("User deleted", slog.Int64("user_id", userID))

	_ = s.RefreshUsers(ctx)

	return nil
}

func (s *userService) Users() ([]models.User, bool) {
	return s.users.Get()
}
