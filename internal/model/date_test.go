package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "bare calendar date",
			input: `"2025-01-10"`,
			want:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 timestamp",
			input: `"2025-01-10T09:30:00Z"`,
			want:  time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with milliseconds",
			input: `"2025-01-10T09:30:00.000Z"`,
			want:  time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   `"next tuesday"`,
			wantErr: true,
		},
		{
			name:    "non-string",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %v want %v", d.Time, tt.want)
		})
	}
}

func TestDateMarshal(t *testing.T) {
	d := NewDate(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-10T00:00:00Z"`, string(b))
}

func TestFoodItemRoundTrip(t *testing.T) {
	loc := "2"
	exp := NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	item := FoodItem{
		ID:               "7",
		Name:             "牛乳",
		ExpiryDate:       &exp,
		RegistrationDate: NewDate(time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)),
		LocationID:       &loc,
	}

	b, err := json.Marshal(item)
	require.NoError(t, err)

	var got FoodItem
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	require.NotNil(t, got.ExpiryDate)
	assert.True(t, exp.Equal(got.ExpiryDate.Time))
	assert.Equal(t, &loc, got.LocationID)
	assert.False(t, got.HasNoExpiry)
}

func TestFoodItemOmitsAbsentFields(t *testing.T) {
	item := FoodItem{
		ID:               "1",
		Name:             "塩",
		RegistrationDate: NewDate(time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)),
		HasNoExpiry:      true,
	}
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "expiryDate")
	assert.NotContains(t, string(b), "locationId")
	assert.Contains(t, string(b), `"hasNoExpiry":true`)
}
