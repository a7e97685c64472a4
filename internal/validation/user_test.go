package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "already normalized",
			email: "alice@example.com",
			want:  "alice@example.com",
		},
		{
			name:  "upper case is lowered",
			email: "Alice@Example.COM",
			want:  "alice@example.com",
		},
		{
			name:  "surrounding whitespace is trimmed",
			email: "  alice@example.com ",
			want:  "alice@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.email))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "alice@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus tag",
			email:   "alice+tag@example.com",
			wantErr: false,
		},
		{
			name:    "empty email",
			email:   "",
			wantErr: true,
		},
		{
			name:    "missing at sign",
			email:   "alice.example.com",
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   "alice@",
			wantErr: true,
		},
		{
			name:    "display name form rejected",
			email:   "Alice <alice@example.com>",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "testpasswd123",
			wantErr:  false,
		},
		{
			name:     "exactly minimum length",
			password: "12345",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "too short",
			password: "12",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateTextField(t *testing.T) {
	require.NoError(t, ValidateTextField("name_of_item", "transport"))

	err := ValidateTextField("name_of_item", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name_of_item")
}

func TestValidateAmount(t *testing.T) {
	require.NoError(t, ValidateAmount("amount", 0))
	require.NoError(t, ValidateAmount("amount", 50))

	err := ValidateAmount("amount", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}
