package swap

import (
	"encoding/json"
	"testing"

	"github.com/mtnPay/seahorse-swap/errors"
	"github.com/mtnPay/seahorse-swap/seahorsetest/assert"
)

func TestSideCounterparty(t *testing.T) {
	assert.Equal(t, SideRequesting, SideOffering.Counterparty())
	assert.Equal(t, SideOffering, SideRequesting.Counterparty())
	assert.Equal(t, SideInvalid, SideInvalid.Counterparty())
	assert.IsErr(t, errors.ErrInput, Side(7).Validate())
}

func TestPolicyJSON(t *testing.T) {
	cases := map[string]struct {
		Raw     string
		Want    Policy
		WantErr *errors.Error
	}{
		"name":            {Raw: `"exact_unit"`, Want: PolicyExactUnit},
		"upper case name": {Raw: `"FIXED_QUANTITY"`, Want: PolicyFixedQuantity},
		"number":          {Raw: `2`, Want: PolicyFixedQuantity},
		"unknown name":    {Raw: `"all_or_nothing"`, WantErr: errors.ErrInput},
		"unknown number":  {Raw: `9`, WantErr: errors.ErrInput},
		"object":          {Raw: `{}`, WantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var p Policy
			err := json.Unmarshal([]byte(tc.Raw), &p)
			if !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.WantErr == nil {
				assert.Equal(t, tc.Want, p)
			}
		})
	}

	raw, err := json.Marshal(PolicyExactUnit)
	assert.Nil(t, err)
	assert.Equal(t, `"exact_unit"`, string(raw))
}
