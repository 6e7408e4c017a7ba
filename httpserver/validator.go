package httpserver

import (
	"mflix/errs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("objectid", validateObjectID)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return errs.Errorf(errs.EINVALID, formatValidationError(err))
	}
	return nil
}

// validateObjectID accepts the 24 hex digit form of a MongoDB ObjectID.
func validateObjectID(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return primitive.IsValidObjectID(fl.Field().String())
}

func formatValidationError(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			if field == "" {
				field = fe.StructField()
			}
			parts = append(parts, field+" failed on "+fe.Tag())
		}
		return "validation error: " + strings.Join(parts, "; ")
	}
	return "validation error"
}
