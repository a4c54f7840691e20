package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Int
	}{
		{"number", `{"v": 3}`, Int{Value: 3, Present: true, Parsed: true}},
		{"numeric string", `{"v": "4"}`, Int{Value: 4, Present: true, Parsed: true}},
		{"padded string", `{"v": " 5 "}`, Int{Value: 5, Present: true, Parsed: true}},
		{"integral float", `{"v": 2.0}`, Int{Value: 2, Present: true, Parsed: true}},
		{"fractional float", `{"v": 2.5}`, Int{Present: true}},
		{"word", `{"v": "science"}`, Int{Present: true}},
		{"object", `{"v": {"id": 1}}`, Int{Present: true}},
		{"bool", `{"v": true}`, Int{Present: true}},
		{"null", `{"v": null}`, Int{}},
		{"absent", `{}`, Int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V Int `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &payload))
			assert.Equal(t, tt.want, payload.V)
		})
	}
}

func TestIntMarshal(t *testing.T) {
	b, err := json.Marshal(map[string]Int{"a": NewInt(7), "b": {Present: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 7, "b": null}`, string(b))
}

func TestStruct(t *testing.T) {
	type payload struct {
		Question   string `json:"question" validate:"required"`
		Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
	}

	assert.NoError(t, Struct(payload{Question: "Why?", Difficulty: 2}))

	err := Struct(payload{Difficulty: 9})
	require.Error(t, err)

	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, Errors{
		{Field: "question", Message: "is required"},
		{Field: "difficulty", Message: "must not exceed 5"},
	}, verrs)
	assert.Equal(t, "question is required; difficulty must not exceed 5", err.Error())
}
