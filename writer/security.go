package writer

import (
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

func (c *writeCtx) buildSecurityScheme(s *ir.SecurityScheme) tree.Value {
	if s == nil {
		return tree.Null()
	}
	m := newMap()
	if ref := s.GetReference(); ref != nil {
		c.setReference(m, ref)
	}
	m.Set("type", tree.String(s.Type.String()))
	setStr(m, "description", s.Description)
	switch s.Type {
	case ir.SecuritySchemeAPIKey:
		setStr(m, "name", s.Name)
		m.Set("in", tree.String(s.In.String()))
	case ir.SecuritySchemeHTTP:
		setStr(m, "scheme", s.Scheme)
		setStr(m, "bearerFormat", s.BearerFormat)
	case ir.SecuritySchemeOAuth2:
		if s.Flows != nil {
			m.Set("flows", buildOAuthFlows(s.Flows))
		}
	case ir.SecuritySchemeOpenIDConnect:
		setStr(m, "openIdConnectUrl", s.OpenIDConnectURL)
	}
	setStr(m, "oauth2MetadataUrl", s.OAuth2MetadataURL)
	setBoolIfTrue(m, "deprecated", s.Deprecated)
	mergeExtensions(m, s.Extensions)
	return tree.Map(m)
}

func buildOAuthFlows(f *ir.OAuthFlows) tree.Value {
	m := newMap()
	if f.Implicit != nil {
		m.Set("implicit", buildOAuthFlow(f.Implicit))
	}
	if f.Password != nil {
		m.Set("password", buildOAuthFlow(f.Password))
	}
	if f.ClientCredentials != nil {
		m.Set("clientCredentials", buildOAuthFlow(f.ClientCredentials))
	}
	if f.AuthorizationCode != nil {
		m.Set("authorizationCode", buildOAuthFlow(f.AuthorizationCode))
	}
	if f.Device != nil {
		m.Set("device", buildOAuthFlow(f.Device))
	}
	mergeExtensions(m, f.Extensions)
	return tree.Map(m)
}

func buildOAuthFlow(f *ir.OAuthFlow) tree.Value {
	m := newMap()
	setStr(m, "authorizationUrl", f.AuthorizationURL)
	setStr(m, "tokenUrl", f.TokenURL)
	setStr(m, "deviceAuthorizationUrl", f.DeviceAuthorizationURL)
	setStr(m, "refreshUrl", f.RefreshURL)
	sm := newMap()
	for _, name := range f.ScopesOrder {
		sm.Set(name, tree.String(f.Scopes[name]))
	}
	m.Set("scopes", tree.Map(sm))
	mergeExtensions(m, f.Extensions)
	return tree.Map(m)
}
