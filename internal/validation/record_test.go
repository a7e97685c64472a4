package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTextFieldRecord(t *testing.T) {
	assert.NoError(t, ValidateTextField("category", "transport"))

	err := ValidateTextField("name_of_item", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name_of_item")
}

func TestValidateAmountRecord(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{name: "positive", amount: 100, wantErr: false},
		{name: "zero", amount: 0, wantErr: false},
		{name: "negative", amount: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount("amount", tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
