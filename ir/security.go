package ir

// SecuritySchemeType enumerates the "type" discriminant of a SecurityScheme.
type SecuritySchemeType int

const (
	SecuritySchemeAPIKey SecuritySchemeType = iota
	SecuritySchemeHTTP
	SecuritySchemeMutualTLS
	SecuritySchemeOAuth2
	SecuritySchemeOpenIDConnect
)

func (t SecuritySchemeType) String() string {
	switch t {
	case SecuritySchemeAPIKey:
		return "apiKey"
	case SecuritySchemeHTTP:
		return "http"
	case SecuritySchemeMutualTLS:
		return "mutualTLS"
	case SecuritySchemeOAuth2:
		return "oauth2"
	case SecuritySchemeOpenIDConnect:
		return "openIdConnect"
	default:
		return "unknown"
	}
}

// SecurityScheme describes a single authentication mechanism.
type SecurityScheme struct {
	Reference *Reference

	Type        SecuritySchemeType
	Description string

	// Name/In apply to apiKey only.
	Name string
	In   ParameterLocation

	// Scheme/BearerFormat apply to http only.
	Scheme       string
	BearerFormat string

	// Flows/OpenIDConnectURL apply to oauth2/openIdConnect respectively.
	Flows             *OAuthFlows
	OpenIDConnectURL  string

	// OAuth2MetadataURL is the OAS 3.2+ "oauth2MetadataUrl" keyword,
	// pointing at an RFC 8414 authorization server metadata document.
	OAuth2MetadataURL string

	Deprecated bool

	Extensions map[string]any
}

func (s *SecurityScheme) GetReference() *Reference { return s.Reference }

// OAuthFlows groups the supported OAuth2 flow configurations.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
	// Device is the OAS 3.2+ device authorization grant flow.
	Device *OAuthFlow

	Extensions map[string]any
}

// OAuthFlow configures a single OAuth2 flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	// DeviceAuthorizationURL applies to the device flow only (OAS 3.2+).
	DeviceAuthorizationURL string
	RefreshURL             string

	Scopes      map[string]string
	ScopesOrder []string

	Extensions map[string]any
}

// SecurityRequirement maps a security scheme name to its required scopes
// (empty for non-OAuth2/OpenIDConnect schemes). Order of scheme names is
// preserved via Order; a requirement with zero entries expresses "this
// alternative needs no authentication" (only meaningful as one member of
// the enclosing slice, not as a replacement for an absent array).
type SecurityRequirement struct {
	Schemes      map[string][]string
	SchemesOrder []string
}
