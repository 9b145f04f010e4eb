package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Title   Optional[string]  `json:"title"`
	Connect Optional[*string] `json:"connect"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var p optionalPayload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Title.Set)
		assert.False(t, p.Connect.Set)
	})

	t.Run("null", func(t *testing.T) {
		var p optionalPayload
		require.NoError(t, json.Unmarshal([]byte(`{"title": null, "connect": null}`), &p))

		assert.True(t, p.Title.Set)
		assert.True(t, p.Title.Null)
		assert.True(t, p.Connect.Set)
		assert.True(t, p.Connect.Null)
		assert.Nil(t, p.Connect.Value)
	})

	t.Run("value", func(t *testing.T) {
		var p optionalPayload
		require.NoError(t, json.Unmarshal([]byte(`{"title": "Пхия", "connect": "Триев"}`), &p))

		assert.Equal(t, Some("Пхия"), p.Title)
		require.NotNil(t, p.Connect.Value)
		assert.Equal(t, "Триев", *p.Connect.Value)
		assert.False(t, p.Connect.Null)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p optionalPayload
		assert.Error(t, json.Unmarshal([]byte(`{"title": 12}`), &p))
	})
}
