package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeAndValidate decodes the request body into dest (with
// DisallowUnknownFields) and runs struct validation on it. On decode or
// validation failure it writes a 422 JSON error and returns false; otherwise
// returns true. Callers should return immediately when DecodeAndValidate
// returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	if err := validate.Struct(dest); err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}
