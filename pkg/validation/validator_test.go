package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name  string `json:"name" binding:"required,min=2"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"gte=0"`
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	Init()
	err := binding.Validator.ValidateStruct(&signup{Name: "A", Email: "nope", Age: -1})
	details := ToDetails(err)
	assert.Equal(t, "must have at least 2 items or characters", details["name"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be greater than or equal to 0", details["age"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	var v signup
	err := json.Unmarshal([]byte(`{"name":`), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
}
