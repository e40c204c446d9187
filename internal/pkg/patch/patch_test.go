package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name        string   `json:"name"`
	Count       int      `json:"count"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

func strPtr(s string) *string { return &s }

func TestApplyPreservesAbsentFields(t *testing.T) {
	d := testDoc{
		Name:        "original",
		Count:       7,
		Description: strPtr("about"),
		Tags:        []string{"a", "b"},
	}

	err := Apply(json.RawMessage(`{"name":"changed"}`), &d)
	require.NoError(t, err)

	assert.Equal(t, "changed", d.Name)
	assert.Equal(t, 7, d.Count, "absent value field must stay")
	require.NotNil(t, d.Description)
	assert.Equal(t, "about", *d.Description, "absent pointer field must stay")
	assert.Equal(t, []string{"a", "b"}, d.Tags, "absent slice field must stay")
}

func TestApplyNullClearsNullableFields(t *testing.T) {
	d := testDoc{
		Name:        "original",
		Count:       7,
		Description: strPtr("about"),
		Tags:        []string{"a", "b"},
	}

	err := Apply(json.RawMessage(`{"description":null,"tags":null}`), &d)
	require.NoError(t, err)

	assert.Nil(t, d.Description, "explicit null must clear a pointer field")
	assert.Nil(t, d.Tags, "explicit null must clear a slice field")
	assert.Equal(t, "original", d.Name)
}

func TestApplyNullOnValueFieldIsNoop(t *testing.T) {
	d := testDoc{Name: "original", Count: 7}

	err := Apply(json.RawMessage(`{"name":null,"count":null}`), &d)
	require.NoError(t, err)

	assert.Equal(t, "original", d.Name)
	assert.Equal(t, 7, d.Count)
}

func TestApplyRejectsMalformedDocuments(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "[1,2]", `"text"`, "42"} {
		d := testDoc{}
		err := Apply(json.RawMessage(raw), &d)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}

	d := testDoc{}
	err := Apply(json.RawMessage(`{"count":"not a number"}`), &d)
	assert.Error(t, err, "type mismatch must be rejected")
	assert.NotErrorIs(t, err, ErrMalformed)
}
