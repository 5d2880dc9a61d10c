package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"court/internal/auth"
	apperrors "court/internal/errors"
	"court/internal/model"
	"court/internal/repository"
)

// currentUser resolves the acting user from the verified JWT claims. The
// user is loaded from the database by id, so the role in effect is always
// the stored one, not whatever the token was minted with.
func currentUser(c echo.Context, users repository.UserRepository) (*model.User, error) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	user, err := users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// httpError translates a domain error into the standardized error response.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
