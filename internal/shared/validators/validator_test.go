package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Files []string `validate:"required,min=1"`
	Date  string   `validate:"omitempty,datetime=2006-01-02"`
	Mode  string   `validate:"oneof=fail skip"`
}

func TestDescribe_ValidationErrors(t *testing.T) {
	t.Parallel()

	err := New().Struct(&sample{Date: "01/02/2023", Mode: "maybe"})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "files (required)")
	assert.Contains(t, msg, "date (datetime=2006-01-02)")
	assert.Contains(t, msg, "mode (oneof=fail skip)")
}

func TestDescribe_Valid(t *testing.T) {
	t.Parallel()

	err := New().Struct(&sample{Files: []string{"a.log"}, Date: "2023-01-01", Mode: "skip"})
	assert.NoError(t, err)
}

func TestDescribe_PlainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
