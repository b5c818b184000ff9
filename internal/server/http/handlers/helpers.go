package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/dto"
)

// bindJSON decodes a request body into dst, rejecting unknown fields so a
// malformed payload fails before any business logic runs.
func bindJSON(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", domainErrors.ErrValidation, err.Error())
	}
	return nil
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", domainErrors.ErrValidation, c.Param("id"))
	}
	return id, nil
}

// respondError maps the domain error taxonomy onto status codes and the
// uniform {error: message} shape. Storage failures pass through as 500 with
// their message intact.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
