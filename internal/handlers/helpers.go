package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mohitsinghgarry/Ecommerce-api-assignment/internal/service"
)

// parsePageParams reads limit and offset query parameters, applying the
// defaults when absent. Explicit out-of-range values are rejected rather
// than clamped.
func parsePageParams(r *http.Request) (limit, offset int64, err error) {
	limit = service.DefaultPageLimit

	if s := r.URL.Query().Get("limit"); s != "" {
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil || v < 1 || v > service.MaxPageLimit {
			return 0, 0, fmt.Errorf("limit must be an integer between 1 and %d", service.MaxPageLimit)
		}
		limit = v
	}

	if s := r.URL.Query().Get("offset"); s != "" {
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil || v < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
		offset = v
	}

	return limit, offset, nil
}

// validationMessage turns the first struct validation failure into a
// client-facing message.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		vErr := vErrs[0]
		switch vErr.Tag() {
		case "required":
			return vErr.Field() + " is required"
		case "min":
			return vErr.Field() + " must have at least " + vErr.Param() + " entries"
		case "gt":
			return vErr.Field() + " must be greater than " + vErr.Param()
		case "gte":
			return vErr.Field() + " must be at least " + vErr.Param()
		}
		return vErr.Field() + " is invalid"
	}
	return "Invalid request body"
}
