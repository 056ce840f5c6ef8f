package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		login   string
		wantErr bool
	}{
		{"valid", "alice", false},
		{"valid with allowed symbols", "a.l-i_ce42", false},
		{"minimal length", "abc", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", MaxLoginLen+1), true},
		{"space not allowed", "ali ce", true},
		{"at sign not allowed", "alice@notes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(tt.login)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "password1", false},
		{"too short", "pass1", true},
		{"no digit", "passwords", true},
		{"no letter", "12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegister(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRegister("alice", "password1"))
	assert.Error(t, v.ValidateRegister("ab", "password1"))
	assert.Error(t, v.ValidateRegister("alice", "short"))
}
