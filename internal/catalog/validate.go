package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/mrlokans/library/internal/entities"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// Validation rules are kept here rather than on the entities so the gorm
// models stay free of request concerns.
type authorRules struct {
	FirstName string `json:"first_name" validate:"notblank,max=255"`
	LastName  string `json:"last_name" validate:"notblank,max=255"`
}

type bookRules struct {
	Title           string  `json:"title" validate:"notblank,max=512"`
	AuthorID        uint    `json:"author_id" validate:"gt=0"`
	ISBN            *string `json:"isbn" validate:"omitempty,max=20"`
	TotalCopies     int     `json:"total_copies" validate:"gte=0"`
	AvailableCopies int     `json:"available_copies" validate:"gte=0,ltefield=TotalCopies"`
}

// ValidateAuthor checks the required names of an author.
func ValidateAuthor(a entities.Author) error {
	return check(authorRules{
		FirstName: a.FirstName,
		LastName:  a.LastName,
	})
}

// ValidateBook checks required fields and 0 <= available_copies <= total_copies.
// Whether the referenced author exists is checked by the book repository.
func ValidateBook(b entities.Book) error {
	return check(bookRules{
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		ISBN:            b.ISBN,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	})
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError(err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return NewValidationError("validation failed", fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "must not be empty"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "ltefield":
		return "must not exceed total_copies"
	default:
		return "is invalid"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
