package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	app := "iron-pixel"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Tenant",
			got:      Tenant(app),
			expected: "iron-pixel-tenant",
		},
		{
			name:     "SigningKey",
			got:      SigningKey(app),
			expected: "iron-pixel-signing-key",
		},
		{
			name:     "Application",
			got:      Application(app),
			expected: "iron-pixel-app",
		},
		{
			name:     "Theme",
			got:      Theme(app),
			expected: "iron-pixel-theme",
		},
		{
			name:     "AdminEmail",
			got:      AdminEmail(app),
			expected: "admin@iron-pixel.com",
		},
		{
			name:     "ObjectKey",
			got:      ObjectKey(app, "json"),
			expected: "iron-pixel/auth.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestCallbackURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"http://localhost:9011", "http://localhost:9011/api/auth/callback/fusionauth"},
		{"http://localhost:9011/", "http://localhost:9011/api/auth/callback/fusionauth"},
		{"https://auth.example.com", "https://auth.example.com/api/auth/callback/fusionauth"},
	}
	for _, tt := range tests {
		if got := CallbackURL(tt.endpoint); got != tt.want {
			t.Errorf("CallbackURL(%q) = %q, want %q", tt.endpoint, got, tt.want)
		}
	}
}
