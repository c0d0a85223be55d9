package middleware

import (
	"testing"

	"github.com/gitalabs/GitaAPI/pkg/logger_i"
)

func TestIsValidBearerToken(t *testing.T) {
	log := logger_i.NewLogger("middleware-test")

	tests := []struct {
		name      string
		authToken string
		bypass    string
		header    string
		want      bool
	}{
		{
			name:      "Valid_Token",
			authToken: "secret-token",
			header:    "Bearer secret-token",
			want:      true,
		},
		{
			name:      "Wrong_Token",
			authToken: "secret-token",
			header:    "Bearer not-the-token",
			want:      false,
		},
		{
			name:      "Missing_Bearer_Prefix",
			authToken: "secret-token",
			header:    "secret-token",
			want:      false,
		},
		{
			name:      "Empty_Header",
			authToken: "secret-token",
			header:    "",
			want:      false,
		},
		{
			// An unset AUTH_TOKEN must lock everyone out, not let everyone in
			name:      "Unset_Token_Locks_Out",
			authToken: "",
			header:    "Bearer ",
			want:      false,
		},
		{
			name:      "Bypass_For_Local_Dev",
			authToken: "",
			bypass:    "true",
			header:    "",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_TOKEN", tt.authToken)
			t.Setenv("NO_AUTH_BYPASS", tt.bypass)

			if got := IsValidBearerToken(tt.header, log); got != tt.want {
				t.Errorf("IsValidBearerToken(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
