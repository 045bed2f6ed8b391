package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationErrors lists every offending field of a rejected request
type validationErrors []fieldError

func (v validationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+" "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

// decode reads a single JSON object into dst and validates it. Unknown fields, including id, are ignored
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return validationErrors{{Field: "body", Message: "could not be read"}}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return validationErrors{{Field: "body", Message: "is required"}}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field == "":
			return validationErrors{{Field: "body", Message: "must be a JSON object"}}
		case errors.As(err, &typeErr):
			if errs := fieldTypeErrors(body, dst); len(errs) > 0 {
				return errs
			}
			return validationErrors{{Field: typeErr.Field, Message: "must be of type " + jsonType(typeErr.Type)}}
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return validationErrors{{Field: "body", Message: "is not valid JSON"}}
		default:
			return validationErrors{{Field: "body", Message: err.Error()}}
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return validationErrors{{Field: "body", Message: "must contain a single JSON object"}}
	}

	err = validate.Struct(dst)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make(validationErrors, 0, len(fieldErrs))
		for _, e := range fieldErrs {
			out = append(out, fieldError{Field: e.Field(), Message: friendlyMessage(e)})
		}
		return out
	}
	return err
}

// fieldTypeErrors lists every field of body whose JSON type does not fit dst's field.
// encoding/json only reports the first one
func fieldTypeErrors(body []byte, dst any) validationErrors {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out validationErrors
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		value, ok := raw[name]
		if !ok || name == "" || name == "-" {
			continue
		}
		if err := json.Unmarshal(value, reflect.New(f.Type).Interface()); err != nil {
			out = append(out, fieldError{Field: name, Message: "must be of type " + jsonType(f.Type)})
		}
	}
	return out
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return "JSON value"
}

// pathID reads the {id} URL parameter
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, validationErrors{{Field: "id", Message: "must be an integer"}}
	}
	return id, nil
}
