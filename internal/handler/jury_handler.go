package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"court/internal/model"
	"court/internal/repository"
	"court/internal/service"
)

// JuryHandler handles the voting ledger endpoints.
type JuryHandler struct {
	juryService service.JuryService
	users       repository.UserRepository
}

// NewJuryHandler creates a new jury handler.
func NewJuryHandler(juryService service.JuryService, users repository.UserRepository) *JuryHandler {
	return &JuryHandler{juryService: juryService, users: users}
}

// VoteRequest carries a juror's verdict.
type VoteRequest struct {
	Vote model.VoteValue `json:"vote" validate:"required,oneof=GUILTY NOT_GUILTY"`
}

// VoteResponse confirms a recorded vote.
type VoteResponse struct {
	Message string `json:"message"`
}

// Vote godoc
// @Summary Cast a verdict for a case (jurors only, one vote per case)
// @Tags jury
// @Accept json
// @Produce json
// @Param case_id path string true "Case identifier"
// @Param request body VoteRequest true "Verdict"
// @Success 201 {object} VoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jury/vote/{case_id} [post]
func (h *JuryHandler) Vote(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.juryService.CastVote(c.Request().Context(), actor, c.Param("case_id"), req.Vote); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, VoteResponse{Message: "Vote recorded"})
}

// Results godoc
// @Summary Read the vote tally for a case (jurors and judges)
// @Tags jury
// @Produce json
// @Param case_id path string true "Case identifier"
// @Success 200 {object} service.TallyResult
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /jury/results/{case_id} [get]
func (h *JuryHandler) Results(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	result, err := h.juryService.Tally(c.Request().Context(), actor, c.Param("case_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}
