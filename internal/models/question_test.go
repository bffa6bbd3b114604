package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionJSONHidesAskerEmail(t *testing.T) {
	q := Question{
		Q_id:      "Q1",
		ProductID: "P1",
		Username:  "Jane D",
		UserEmail: "jane@example.com",
		Text:      "Is it washable?",
		Answers:   []Answer{},
	}

	out, err := json.Marshal(q)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "jane@example.com")
	assert.NotContains(t, string(out), "userEmail")
	assert.Contains(t, string(out), "Is it washable?")
}
