package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{name: "Valid", req: LoginRequest{Username: "priya", Password: "secret123"}},
		{name: "Missing username", req: LoginRequest{Password: "secret123"}, wantErr: true},
		{name: "Missing password", req: LoginRequest{Username: "priya"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Username:        "priya",
		Email:           "priya@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		UserType:        "employee",
	}

	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr bool
	}{
		{name: "Valid employee", mutate: func(*SignupRequest) {}},
		{name: "Valid company", mutate: func(r *SignupRequest) { r.UserType = "company" }},
		{name: "Short username", mutate: func(r *SignupRequest) { r.Username = "ab" }, wantErr: true},
		{name: "Bad email", mutate: func(r *SignupRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "Short password", mutate: func(r *SignupRequest) {
			r.Password = "short"
			r.ConfirmPassword = "short"
		}, wantErr: true},
		{name: "Password mismatch", mutate: func(r *SignupRequest) { r.ConfirmPassword = "different1" }, wantErr: true},
		{name: "Unknown user type", mutate: func(r *SignupRequest) { r.UserType = "admin" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupRequestMarshal_OmitsConfirmPassword(t *testing.T) {
	req := SignupRequest{
		Username:        "priya",
		Email:           "priya@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		UserType:        "employee",
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "confirm")
	assert.NotContains(t, string(data), "ConfirmPassword")
}

func TestUserDecode_ProfileUserType(t *testing.T) {
	payload := `{"id": 7, "username": "acme-hr", "user_profile": {"user_type": "company"}}`

	var user User
	require.NoError(t, json.Unmarshal([]byte(payload), &user))
	require.NotNil(t, user.Profile)
	assert.Equal(t, "company", user.Profile.UserType)
}
