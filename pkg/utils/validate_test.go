package utils

import (
	"testing"

	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	TargetID int64  `json:"target_id" validate:"required"`
	Convo    string `json:"convo"`
}

func TestValidate_ReportsJSONFieldName(t *testing.T) {
	_, err := Validate(sample{Convo: "hi"})
	require.Error(t, err)

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "target_id")
	assert.Contains(t, verr.Message, "required")
}

func TestValidate_OK(t *testing.T) {
	v, err := Validate(sample{TargetID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.TargetID)
}
