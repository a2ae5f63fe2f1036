package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
)

// maxJSONBody bounds export and transform request bodies.
const maxJSONBody = 10 << 20

var (
	validate   *validator.Validate
	translator ut.Translator

	userRoleTag = "userrole"
	fileNameTag = "filename"
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(userRoleTag, func(fl validator.FieldLevel) bool {
		return core.IsUserRole(fl.Field().String())
	})
	_ = validate.RegisterValidation(fileNameTag, func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), `/\"`+"\r\n")
	})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{userRoleTag, fileNameTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustomErr)
	}
}

func translateCustomErr(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case userRoleTag:
		return fmt.Sprintf("%s must be one of student, teacher, parent or staff", fe.Field())
	case fileNameTag:
		return fmt.Sprintf("%s must not contain slashes, quotes or line breaks", fe.Field())
	default:
		return ""
	}
}

// exportRequest is the body of POST /api/export.
type exportRequest struct {
	Filename string        `json:"filename" validate:"required,max=100,filename"`
	Headers  []string      `json:"headers" validate:"required,min=1,dive,required"`
	Data     []core.Record `json:"data"`
}

// exportUsersRequest is the body of POST /api/export/{role}.
type exportUsersRequest struct {
	Role     string      `json:"role" validate:"userrole"`
	Filename string      `json:"filename" validate:"omitempty,max=100,filename"`
	Users    []core.User `json:"users" validate:"required"`
}

// transformRequest is the body of POST /api/transform/{role}.
type transformRequest struct {
	Role string     `json:"role" validate:"userrole"`
	Rows []core.Row `json:"rows" validate:"required"`
}

// requestError is a malformed or invalid request body. fields maps JSON
// field names to translated messages.
type requestError struct {
	msg    string
	fields map[string]string
}

func (e *requestError) Error() string {
	return "invalid request: " + e.msg
}

// decodeRequest reads a JSON body into dst. Callers validate after
// filling in any path parameters.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &requestError{msg: err.Error()}
	}
	return nil
}

// validateRequest runs struct validation and collects translated field
// messages.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &requestError{msg: err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		fields[name] = fe.Translate(translator)
		names = append(names, name)
	}
	return &requestError{msg: strings.Join(names, ", "), fields: fields}
}
