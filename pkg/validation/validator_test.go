package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type createPayload struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name" validate:"required,min=3,max=100"`
	Role  string `json:"role" validate:"omitempty,oneof=User Manager Admin"`
}

type listQuery struct {
	Page     int `form:"page" validate:"page"`
	PageSize int `form:"pageSize" validate:"page"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	err := newValidator().Struct(createPayload{Email: "nope", Name: "Al", Role: "Root"})

	details := ToDetails(err)

	assert.Equal(t, map[string]string{
		"name":  "must be at least 3 characters long",
		"role":  "must be one of: User, Manager, Admin",
	}, details)
}

func TestToDetailsRequired(t *testing.T) {
	err := newValidator().Struct(createPayload{})
	details := ToDetails(err)
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["name"])
}

func TestToDetailsUnknownTag(t *testing.T) {
	type payload struct {
		Code string `json:"code" validate:"len=4"`
	}
	err := newValidator().Struct(payload{Code: "abc"})
	assert.Equal(t, map[string]string{"code": "validation failed for 'len' with parameter '4'"}, ToDetails(err))
}

func TestPageAliasUsesFormNames(t *testing.T) {
	err := newValidator().Struct(listQuery{Page: -1, PageSize: 5})
	assert.Equal(t, map[string]string{"page": "must not be negative"}, ToDetails(err))

	assert.NoError(t, newValidator().Struct(listQuery{}))
}

func TestToDetailsPayloadErrors(t *testing.T) {
	var target map[string]any
	syntaxErr := json.Unmarshal([]byte("{"), &target)

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(syntaxErr))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("eof")))
}
