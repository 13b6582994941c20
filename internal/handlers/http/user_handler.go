package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brunopaz/autofipe-backend/internal/handlers/dto"
	"github.com/brunopaz/autofipe-backend/internal/handlers/middleware"
	"github.com/brunopaz/autofipe-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser cria um novo usuário. A rota aceita requisições anônimas
// (auto-cadastro) e autenticadas; no primeiro caso o registro é carimbado
// como criado por si mesmo.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	var createdByID string
	if principal, ok := middleware.Principal(c); ok {
		createdByID = principal.ID
	}

	user, err := h.userService.Create(c.Request.Context(), services.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Birthdate:  req.Birthdate,
		Contact:    req.Contact,
		NationalID: req.NationalID,
	}, createdByID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// UpdateUser atualiza um usuário existente
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	principal, _ := middleware.Principal(c)

	user, err := h.userService.Update(c.Request.Context(), id, services.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Birthdate:  req.Birthdate,
		Contact:    req.Contact,
		NationalID: req.NationalID,
	}, principal.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser faz o soft delete da conta do próprio usuário autenticado
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	principal, _ := middleware.Principal(c)

	if err := h.userService.Delete(c.Request.Context(), id, principal.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers lista usuários com paginação, busca e ordenação
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	params := listParams(query.ListQuery, query.OrderByField).Normalized()

	users, total, err := h.userService.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[dto.UserResponse]{
		Items:      dto.ToUserResponses(users),
		Total:      total,
		TotalPages: totalPages(total, params.PageSize),
	})
}
