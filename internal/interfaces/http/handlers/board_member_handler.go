package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/internal/domain/repositories"
	"interact-club.backend/internal/interfaces/http/response"
)

type BoardMemberHandler struct {
	repo repositories.BoardMemberRepository
}

func NewBoardMemberHandler(repo repositories.BoardMemberRepository) *BoardMemberHandler {
	return &BoardMemberHandler{repo: repo}
}

// ListBoardMembers returns the board ordered by display order.
// GET /api/board-members
func (h *BoardMemberHandler) ListBoardMembers(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateBoardMember creates a board member.
// POST /api/board-members
func (h *BoardMemberHandler) CreateBoardMember(c *gin.Context) {
	var input entities.CreateBoardMemberInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	member := &entities.BoardMember{
		Name:     input.Name,
		Position: input.Position,
		Email:    input.Email,
		Image:    input.Image,
		Order:    input.Order,
	}
	if err := h.repo.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// UpdateBoardMember applies a partial update.
// PUT /api/board-members/:id
func (h *BoardMemberHandler) UpdateBoardMember(c *gin.Context) {
	id, ok := pathID(c, "board member")
	if !ok {
		return
	}
	var input entities.UpdateBoardMemberInput
	if !bindJSON(c, &input) || !validateInput(c, &input) {
		return
	}

	ctx := c.Request.Context()
	member, err := h.repo.GetByID(ctx, id)
	if err != nil {
		response.Error(c, notFoundAs(err, "Board member not found"))
		return
	}
	input.Apply(member)
	if err := h.repo.Update(ctx, member); err != nil {
		response.Error(c, notFoundAs(err, "Board member not found"))
		return
	}
	response.Success(c, http.StatusOK, member)
}

// DeleteBoardMember soft deletes a board member.
// DELETE /api/board-members/:id
func (h *BoardMemberHandler) DeleteBoardMember(c *gin.Context) {
	id, ok := pathID(c, "board member")
	if !ok {
		return
	}
	if err := h.repo.SoftDelete(c.Request.Context(), id); err != nil {
		response.Error(c, notFoundAs(err, "Board member not found"))
		return
	}
	response.Message(c, http.StatusOK, "Board member deleted successfully")
}
