package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"court/internal/model"
	"court/internal/repository"
	"court/internal/service"
)

// CaseHandler handles the case submission workflow endpoints.
type CaseHandler struct {
	caseService service.CaseService
	users       repository.UserRepository
}

// NewCaseHandler creates a new case handler.
func NewCaseHandler(caseService service.CaseService, users repository.UserRepository) *CaseHandler {
	return &CaseHandler{caseService: caseService, users: users}
}

// SubmitRequest represents a new case submission.
type SubmitRequest struct {
	CaseID        string `json:"case_id" validate:"required,min=3,max=64"`
	PlaintiffName string `json:"plaintiff_name" validate:"required,min=1,max=120"`
	DefendantName string `json:"defendant_name" validate:"required,min=1,max=120"`
	ArgumentText  string `json:"argument_text" validate:"required"`
	EvidenceText  string `json:"evidence_text" validate:"required"`
}

// EditRequest is a merge-patch over a submission: absent fields are left
// untouched.
type EditRequest struct {
	PlaintiffName *string `json:"plaintiff_name" validate:"omitempty,min=1,max=120"`
	DefendantName *string `json:"defendant_name" validate:"omitempty,min=1,max=120"`
	ArgumentText  *string `json:"argument_text" validate:"omitempty,min=1"`
	EvidenceText  *string `json:"evidence_text" validate:"omitempty,min=1"`
	JudgeNotes    *string `json:"judge_notes"`
}

// DecisionRequest optionally attaches judge notes to an approve or reject.
type DecisionRequest struct {
	JudgeNotes *string `json:"judge_notes"`
}

// Submit godoc
// @Summary Submit a case narrative for judge review
// @Tags cases
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Case submission"
// @Success 201 {object} model.CaseSubmission
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/submit [post]
func (h *CaseHandler) Submit(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	submission, err := h.caseService.Submit(c.Request().Context(), actor, service.SubmitInput{
		CaseID:        req.CaseID,
		PlaintiffName: req.PlaintiffName,
		DefendantName: req.DefendantName,
		ArgumentText:  req.ArgumentText,
		EvidenceText:  req.EvidenceText,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, submission)
}

// ListAll godoc
// @Summary List submissions visible to the caller
// @Tags cases
// @Produce json
// @Success 200 {array} model.CaseSubmission
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/all [get]
func (h *CaseHandler) ListAll(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	submissions, err := h.caseService.ListVisible(c.Request().Context(), actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, submissions)
}

// SearchByName godoc
// @Summary Search approved submissions by party name (jurors only)
// @Tags cases
// @Produce json
// @Param name path string true "Name substring"
// @Success 200 {array} model.CaseSubmission
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/by-name/{name} [get]
func (h *CaseHandler) SearchByName(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	submissions, err := h.caseService.SearchByName(c.Request().Context(), actor, c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, submissions)
}

// Edit godoc
// @Summary Edit submission fields (judges only, merge-patch)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param request body EditRequest true "Fields to change"
// @Success 200 {object} model.CaseSubmission
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/edit/{id} [patch]
func (h *CaseHandler) Edit(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	id, err := submissionID(c)
	if err != nil {
		return err
	}

	var req EditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	submission, err := h.caseService.Edit(c.Request().Context(), actor, id, service.SubmissionPatch{
		PlaintiffName: req.PlaintiffName,
		DefendantName: req.DefendantName,
		ArgumentText:  req.ArgumentText,
		EvidenceText:  req.EvidenceText,
		JudgeNotes:    req.JudgeNotes,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, submission)
}

// Approve godoc
// @Summary Approve a submission (judges only)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param request body DecisionRequest false "Optional judge notes"
// @Success 200 {object} model.CaseSubmission
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/approve/{id} [patch]
func (h *CaseHandler) Approve(c echo.Context) error {
	return h.decide(c, h.caseService.Approve)
}

// Reject godoc
// @Summary Reject a submission (judges only)
// @Tags cases
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param request body DecisionRequest false "Optional judge notes"
// @Success 200 {object} model.CaseSubmission
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/reject/{id} [patch]
func (h *CaseHandler) Reject(c echo.Context) error {
	return h.decide(c, h.caseService.Reject)
}

// Delete godoc
// @Summary Permanently delete a submission (judges only)
// @Tags cases
// @Param id path int true "Submission ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /case/delete/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	id, err := submissionID(c)
	if err != nil {
		return err
	}

	if err := h.caseService.Delete(c.Request().Context(), actor, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CaseHandler) decide(c echo.Context, fn func(ctx context.Context, actor *model.User, id uint, notes *string) (*model.CaseSubmission, error)) error {
	actor, err := currentUser(c, h.users)
	if err != nil {
		return httpError(err)
	}

	id, err := submissionID(c)
	if err != nil {
		return err
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	submission, err := fn(c.Request().Context(), actor, id, req.JudgeNotes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, submission)
}

// submissionID parses the :id path parameter.
func submissionID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid submission id")
	}
	return uint(id), nil
}
