package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `2500`, 2500},
		{"numeric string", `"1500"`, 1500},
		{"decimal string", `"99.5"`, 99.5},
		{"non-numeric string", `"abc"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tc.in), &a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, float64(a))
		})
	}
}

func TestAmountUnmarshalInStruct(t *testing.T) {
	var p struct {
		FundingAmount Amount `json:"fundingAmount"`
	}

	err := json.Unmarshal([]byte(`{"fundingAmount":"1500"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, Amount(1500), p.FundingAmount)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
