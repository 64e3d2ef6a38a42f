package fusionauth

// Tenant is a FusionAuth tenant.
type Tenant struct {
	ID               string            `json:"id,omitempty"`
	Name             string            `json:"name,omitempty"`
	JWTConfiguration *JWTConfiguration `json:"jwtConfiguration,omitempty"`
}

// JWTConfiguration selects the keys used to sign tokens.
type JWTConfiguration struct {
	Enabled          bool   `json:"enabled,omitempty"`
	AccessTokenKeyID string `json:"accessTokenKeyId,omitempty"`
	IDTokenKeyID     string `json:"idTokenKeyId,omitempty"`
}

// Key is a signing key.
type Key struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Length    int    `json:"length,omitempty"`
}

// Application is an OAuth/OIDC client registration.
type Application struct {
	ID                        string                     `json:"id,omitempty"`
	Name                      string                     `json:"name,omitempty"`
	TenantID                  string                     `json:"tenantId,omitempty"`
	OAuthConfiguration        *OAuthConfiguration        `json:"oauthConfiguration,omitempty"`
	JWTConfiguration          *JWTConfiguration          `json:"jwtConfiguration,omitempty"`
	RegistrationConfiguration *RegistrationConfiguration `json:"registrationConfiguration,omitempty"`
	Roles                     []ApplicationRole          `json:"roles,omitempty"`
}

// ClientID returns the OAuth client ID, or "" when absent.
func (a *Application) ClientID() string {
	if a == nil || a.OAuthConfiguration == nil {
		return ""
	}
	return a.OAuthConfiguration.ClientID
}

// ClientSecret returns the OAuth client secret, or "" when absent.
func (a *Application) ClientSecret() string {
	if a == nil || a.OAuthConfiguration == nil {
		return ""
	}
	return a.OAuthConfiguration.ClientSecret
}

// OAuthConfiguration is an application's OAuth settings.
type OAuthConfiguration struct {
	ClientID               string   `json:"clientId,omitempty"`
	ClientSecret           string   `json:"clientSecret,omitempty"`
	AuthorizedRedirectURLs []string `json:"authorizedRedirectURLs,omitempty"`
	AuthorizedOriginURLs   []string `json:"authorizedOriginURLs,omitempty"`
	LogoutURL              string   `json:"logoutURL,omitempty"`
	EnabledGrants          []string `json:"enabledGrants,omitempty"`
	Debug                  bool     `json:"debug,omitempty"`
	GenerateRefreshTokens  bool     `json:"generateRefreshTokens,omitempty"`
	RequireRegistration    bool     `json:"requireRegistration,omitempty"`
}

// RegistrationConfiguration toggles self-service registration.
type RegistrationConfiguration struct {
	Enabled bool `json:"enabled"`
}

// ApplicationRole is a role defined on an application.
type ApplicationRole struct {
	Name string `json:"name"`
}

// User is a FusionAuth user.
type User struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Registration links a user to an application.
type Registration struct {
	ApplicationID string   `json:"applicationId,omitempty"`
	Roles         []string `json:"roles,omitempty"`
}

// Theme is a hosted login page theme.
type Theme struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// ApplicationSpec describes the application fusionboot registers.
type ApplicationSpec struct {
	Name string
	// TenantID is sent explicitly as the tenant header on create.
	TenantID string
	// Origin is the consuming application's base URL.
	Origin       string
	CallbackURL  string
	SigningKeyID string
	Roles        []string
}

// AdminUserSpec describes the admin user fusionboot registers.
type AdminUserSpec struct {
	Email         string
	Password      string
	ApplicationID string
	Roles         []string
}

// Request and response envelopes.

type searchCriteria struct {
	Name            string `json:"name,omitempty"`
	QueryString     string `json:"queryString,omitempty"`
	NumberOfResults int    `json:"numberOfResults,omitempty"`
	OrderBy         string `json:"orderBy,omitempty"`
	StartRow        *int   `json:"startRow,omitempty"`
}

type searchRequest struct {
	Search searchCriteria `json:"search"`
}

type tenantRequest struct {
	Tenant Tenant `json:"tenant"`
}

type tenantResponse struct {
	Tenant *Tenant `json:"tenant"`
}

type tenantSearchResponse struct {
	Tenants []Tenant `json:"tenants"`
	Total   int      `json:"total"`
}

type tenantDeleteRequest struct {
	Async bool `json:"async"`
}

type keyRequest struct {
	Key Key `json:"key"`
}

type keyResponse struct {
	Key *Key `json:"key"`
}

type keySearchResponse struct {
	Keys  []Key `json:"keys"`
	Total int   `json:"total"`
}

type applicationRequest struct {
	Application Application `json:"application"`
}

type applicationResponse struct {
	Application *Application `json:"application"`
}

type applicationSearchResponse struct {
	Applications []Application `json:"applications"`
	Total        int           `json:"total"`
}

type registrationRequest struct {
	User         User         `json:"user"`
	Registration Registration `json:"registration"`
}

type registrationResponse struct {
	User         *User         `json:"user"`
	Registration *Registration `json:"registration"`
}

type userSearchResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type themeRequest struct {
	SourceThemeID string `json:"sourceThemeId"`
	Theme         Theme  `json:"theme"`
}

type themeResponse struct {
	Theme *Theme `json:"theme"`
}

type themeSearchResponse struct {
	Themes []Theme `json:"themes"`
	Total  int     `json:"total"`
}
