package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Request bodies. Amounts and goals are rejected below 1 ml at this
// boundary; the store itself records whatever the service layer hands it.
type (
	registerRequest struct {
		Username  string `json:"username" validate:"required"`
		DailyGoal int64  `json:"daily_goal" validate:"required,gte=1"`
	}

	goalUpdateRequest struct {
		Username string `json:"username" validate:"required"`
		NewGoal  int64  `json:"new_goal" validate:"required,gte=1"`
	}

	intakeRequest struct {
		Username string `json:"username" validate:"required"`
		Amount   int64  `json:"amount" validate:"required,gte=1"`
		Date     string `json:"date" validate:"required"` // YYYY-MM-DD
	}
)

// decodeAndValidate unmarshals the body into dst and runs struct
// validation. Returns false after writing the error response.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		msg := "invalid request"
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg = "invalid field: " + verrs[0].Field()
		}
		writeError(w, http.StatusUnprocessableEntity, msg)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
