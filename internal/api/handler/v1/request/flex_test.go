package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat(t *testing.T) {
	var v struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 45.3842, "b": " 7.1525 "}`), &v))
	assert.Equal(t, FlexFloat(45.3842), v.A)
	assert.Equal(t, FlexFloat(7.1525), v.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "north"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a": "NaN"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &v))
}

func TestFlexInt(t *testing.T) {
	var v struct {
		H FlexInt `json:"h"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"h": "1200"}`), &v))
	assert.Equal(t, FlexInt(1200), v.H)

	require.NoError(t, json.Unmarshal([]byte(`{"h": 1200.0}`), &v))
	assert.Equal(t, FlexInt(1200), v.H)

	assert.Error(t, json.Unmarshal([]byte(`{"h": 12.5}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"h": "high"}`), &v))
}

func TestFlexTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2021-09-22T13:18:13+03:00"`, time.Date(2021, 9, 22, 10, 18, 13, 0, time.UTC)},
		{`"2021-09-22T13:18:13Z"`, time.Date(2021, 9, 22, 13, 18, 13, 0, time.UTC)},
		{`"2021-09-22T13:18:13"`, time.Date(2021, 9, 22, 13, 18, 13, 0, time.UTC)},
		{`"2021-09-22 13:18:13"`, time.Date(2021, 9, 22, 13, 18, 13, 0, time.UTC)},
		{`"2021-09-22 13:18:13.5"`, time.Date(2021, 9, 22, 13, 18, 13, 500000000, time.UTC)},
		{`"2021-09-22"`, time.Date(2021, 9, 22, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got FlexTime
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, tt.want.Equal(got.Time), "got %v", got.Time)
		})
	}

	var got FlexTime
	assert.Error(t, json.Unmarshal([]byte(`"22.09.2021"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`1632305893`), &got))
}

func TestFlexTime_KeepsWallClock(t *testing.T) {
	var got FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2021-09-22T13:18:13+03:00"`), &got))

	assert.Equal(t, 13, got.Hour())
	_, offset := got.Zone()
	assert.Equal(t, 3*60*60, offset)
}
