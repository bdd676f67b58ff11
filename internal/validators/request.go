package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/crypto"
	"github.com/MKhiriev/go-social-api/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the email of a credentials body.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a credentials body.
	FieldPassword = "password"

	// FieldBody targets the text of a post or comment.
	FieldBody = "body"

	// FieldPostID targets the referenced post of a comment or like.
	FieldPostID = "post_id"
)

// sortings lists every accepted value of the "sorting" query parameter.
var sortings = []any{models.SortNew, models.SortOld, models.SortMostLikes}

// RequestValidator implements Validator for the request bodies accepted by
// the HTTP layer: UserIn, PostIn, CommentIn, LikeIn and PostSorting.
// Value and pointer forms are accepted.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted every field is validated.
//
// Rule violations are returned wrapped in ErrInvalidInput. Returns
// ErrUnsupportedType for unknown types and ErrUnknownField when a field scope
// does not exist on the type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserIn:
		return v.validateUserIn(&value, fields...)
	case *models.UserIn:
		return v.validateUserIn(value, fields...)

	case models.PostIn:
		return v.validatePostIn(&value, fields...)
	case *models.PostIn:
		return v.validatePostIn(value, fields...)

	case models.CommentIn:
		return v.validateCommentIn(&value, fields...)
	case *models.CommentIn:
		return v.validateCommentIn(value, fields...)

	case models.LikeIn:
		return v.validateLikeIn(&value, fields...)
	case *models.LikeIn:
		return v.validateLikeIn(value, fields...)

	case models.PostSorting:
		return wrap(validation.Validate(value, validation.In(sortings...)))
	case *models.PostSorting:
		return wrap(validation.Validate(*value, validation.In(sortings...)))

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUserIn(in *models.UserIn, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldEmail:    validation.Field(&in.Email, validation.Required, is.Email),
		FieldPassword: validation.Field(&in.Password, validation.Required, validation.Length(1, crypto.MaxPasswordBytes)),
	}
	return validateScoped(in, rules, []string{FieldEmail, FieldPassword}, fields)
}

func (v *RequestValidator) validatePostIn(in *models.PostIn, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldBody: validation.Field(&in.Body, validation.Required),
	}
	return validateScoped(in, rules, []string{FieldBody}, fields)
}

func (v *RequestValidator) validateCommentIn(in *models.CommentIn, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldBody:   validation.Field(&in.Body, validation.Required),
		FieldPostID: validation.Field(&in.PostID, validation.Required, validation.Min(1)),
	}
	return validateScoped(in, rules, []string{FieldBody, FieldPostID}, fields)
}

func (v *RequestValidator) validateLikeIn(in *models.LikeIn, fields ...string) error {
	rules := map[string]*validation.FieldRules{
		FieldPostID: validation.Field(&in.PostID, validation.Required, validation.Min(1)),
	}
	return validateScoped(in, rules, []string{FieldPostID}, fields)
}

// validateScoped runs the rules named in fields (or defaults when fields is
// empty) against the struct pointed to by structPtr.
func validateScoped(structPtr any, rules map[string]*validation.FieldRules, defaults, fields []string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	selected := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		rule, ok := rules[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		selected = append(selected, rule)
	}

	return wrap(validation.ValidateStruct(structPtr, selected...))
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
