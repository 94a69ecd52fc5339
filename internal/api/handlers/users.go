package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/admin"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService admin.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService admin.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// ListUsers godoc
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}		models.User				"Users"
//	@Failure	502	{object}	response.ErrorResponse	"Retail API unreachable"
//	@Security	BearerAuth
//	@Router		/admin/users [get]
func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.userService.RefreshUsers(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		users, _ := h.userService.Users()
		response.Success(w, http.StatusOK, users)
	}
}

// UpdateUserStatus godoc
//	@Summary	Change a user's status
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"User ID"
//	@Param		status	body		models.UpdateUserStatusRequest	true	"New status"
//	@Success	200		{object}	models.User						"Updated user"
//	@Failure	400		{object}	response.ErrorResponse			"Invalid ID or status"
//	@Failure	404		{object}	response.ErrorResponse			"User not found"
//	@Security	BearerAuth
//	@Router		/admin/users/{id}/status [patch]
func (h *UserHandler) UpdateUserStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateUserStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.UpdateStatus(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// DeleteUser godoc
//	@Summary	Delete a user
//	@Tags		Users
//	@Param		id	path	int	true	"User ID"
//	@Success	204	"User deleted"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid user ID"
//	@Failure	404	{object}	response.ErrorResponse	"User not found"
//	@Security	BearerAuth
//	@Router		/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.userService.Delete(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
