package validator

import (
	"strings"

	"github.com/kestrelapi/oas32/ir"
	"golang.org/x/oauth2"
)

var validSecuritySchemeIn = map[ir.ParameterLocation]bool{
	ir.ParameterInHeader: true, ir.ParameterInQuery: true, ir.ParameterInCookie: true,
}

func (c *validateCtx) validateSecurityScheme(s *ir.SecurityScheme, path, name string) {
	if s == nil {
		return
	}
	if ref := s.GetReference(); ref != nil {
		c.checkRef(path, ref.Ref)
		return
	}
	if looksLikeURI(name) {
		c.addWarning(path, "security scheme name %q looks like a URI", name)
	}
	switch s.Type {
	case ir.SecuritySchemeAPIKey:
		if s.Name == "" {
			c.addError(path+".name", "apiKey security scheme requires name")
		}
		if !validSecuritySchemeIn[s.In] {
			c.addError(path+".in", "apiKey security scheme 'in' must be one of header, query, cookie")
		}
	case ir.SecuritySchemeHTTP:
		if s.Scheme == "" {
			c.addError(path+".scheme", "http security scheme requires scheme")
		}
	case ir.SecuritySchemeOAuth2:
		if s.Flows == nil {
			c.addError(path+".flows", "oauth2 security scheme requires flows")
			return
		}
		c.validateOAuthFlows(s.Flows, path+".flows")
	case ir.SecuritySchemeOpenIDConnect:
		if s.OpenIDConnectURL == "" {
			c.addError(path+".openIdConnectUrl", "openIdConnect security scheme requires openIdConnectUrl")
		} else if !isValidURL(s.OpenIDConnectURL) {
			c.addError(path+".openIdConnectUrl", "openIdConnectUrl %q is not a valid URL", s.OpenIDConnectURL)
		}
	case ir.SecuritySchemeMutualTLS:
		// no required fields beyond type.
	default:
		c.addError(path+".type", "unknown security scheme type")
	}
}

func looksLikeURI(s string) bool {
	return strings.Contains(s, "://")
}

func (c *validateCtx) validateOAuthFlows(flows *ir.OAuthFlows, path string) {
	if flows.Implicit != nil {
		c.requireFlowURLs(flows.Implicit, path+".implicit", true, false)
	}
	if flows.Password != nil {
		c.requireFlowURLs(flows.Password, path+".password", false, true)
	}
	if flows.ClientCredentials != nil {
		c.requireFlowURLs(flows.ClientCredentials, path+".clientCredentials", false, true)
	}
	if flows.AuthorizationCode != nil {
		c.requireFlowURLs(flows.AuthorizationCode, path+".authorizationCode", true, true)
	}
	if flows.Device != nil {
		c.validateDeviceFlow(flows.Device, path+".device")
	}
}

// requireFlowURLs checks a flow's required URL set and, when both an
// authorization URL and a token URL are present, builds a real
// oauth2.Endpoint and asks
// the library to render an authorization request URL from it as a
// structural "is this actually a usable endpoint" check, instead of
// duplicating ad hoc URL-shape validation by hand.
func (c *validateCtx) requireFlowURLs(flow *ir.OAuthFlow, path string, requireAuth, requireToken bool) {
	if requireAuth && flow.AuthorizationURL == "" {
		c.addError(path+".authorizationUrl", "flow requires authorizationUrl")
	}
	if requireToken && flow.TokenURL == "" {
		c.addError(path+".tokenUrl", "flow requires tokenUrl")
	}
	if flow.RefreshURL != "" && !isValidURL(flow.RefreshURL) {
		c.addError(path+".refreshUrl", "refreshUrl %q is not a valid URL", flow.RefreshURL)
	}
	if flow.AuthorizationURL != "" && flow.TokenURL != "" {
		endpoint := oauth2.Endpoint{AuthURL: flow.AuthorizationURL, TokenURL: flow.TokenURL}
		cfg := oauth2.Config{Endpoint: endpoint}
		authURL := cfg.AuthCodeURL("state")
		if !isValidURL(authURL) {
			c.addError(path+".authorizationUrl", "authorizationUrl %q does not produce a usable OAuth2 endpoint", flow.AuthorizationURL)
		}
	} else {
		if flow.AuthorizationURL != "" && !isValidURL(flow.AuthorizationURL) {
			c.addError(path+".authorizationUrl", "authorizationUrl %q is not a valid URL", flow.AuthorizationURL)
		}
		if flow.TokenURL != "" && !isValidURL(flow.TokenURL) {
			c.addError(path+".tokenUrl", "tokenUrl %q is not a valid URL", flow.TokenURL)
		}
	}
}

func (c *validateCtx) validateDeviceFlow(flow *ir.OAuthFlow, path string) {
	if flow.DeviceAuthorizationURL == "" {
		c.addError(path+".deviceAuthorizationUrl", "device flow requires deviceAuthorizationUrl")
	} else if !isValidURL(flow.DeviceAuthorizationURL) {
		c.addError(path+".deviceAuthorizationUrl", "deviceAuthorizationUrl %q is not a valid URL", flow.DeviceAuthorizationURL)
	}
	if flow.TokenURL == "" {
		c.addError(path+".tokenUrl", "device flow requires tokenUrl")
	}
}

func (c *validateCtx) validateSecurityRequirements(reqs []ir.SecurityRequirement, path string) {
	schemes := map[string]bool{}
	if c.def.Components != nil {
		for name := range c.def.Components.SecuritySchemes {
			schemes[name] = true
		}
	}
	for i, req := range reqs {
		for _, name := range req.SchemesOrder {
			if looksLikeURI(name) {
				continue
			}
			if !schemes[name] {
				c.addError(indexPath(path, i), "security requirement references unknown scheme %q", name)
			}
		}
	}
}
