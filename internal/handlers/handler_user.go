package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.POST("", h.createUser)
		users.POST("/bulk", h.createUsers)
		users.PUT("/:id", h.updateUser)
		users.PUT("/:id/password", h.changePassword)
		users.DELETE("/:id", h.deleteUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a new member account (admin action)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdUser, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(createdUser))
}

// createUsers godoc
// @Summary Create users in bulk
// @Description Creates a batch of member accounts in one transaction (admin action)
// @Tags users
// @Accept  json
// @Produce  json
// @Param   users body []dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.ListUsersResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Duplicate username in batch"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/bulk [post]
func (h *userHandler) createUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var reqs []dto.CreateUserRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdUsers, err := h.userService.CreateUsers(c.Request.Context(), reqs, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create users")
		return
	}

	logger.Info("Users imported", slog.Int("count", len(createdUsers)))
	c.JSON(http.StatusCreated, dto.ToListUsersResponse(createdUsers))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Retrieves details for a specific user by their ID
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a paginated list of users
// @Tags users
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// updateUser godoc
// @Summary Update a user
// @Description Updates an existing user's details
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	userID := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedUser, err := h.userService.UpdateUser(c.Request.Context(), userID, req, requestingUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updatedUser))
}

// changePassword godoc
// @Summary Change a user's password
// @Description Replaces the user's password after verifying the old one when provided
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   password body dto.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Old password does not match"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/password [put]
func (h *userHandler) changePassword(c *gin.Context) {
	userID := c.Param("id")

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req, requestingUserID); err != nil {
		respondServiceError(c, err, "Failed to change password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft deletes a user. Users that still own expense records cannot be deleted.
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "User owns expense records"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, requestingUserID); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
