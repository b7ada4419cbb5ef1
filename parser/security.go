package parser

import (
	"github.com/kestrelapi/oas32/ir"
	"github.com/kestrelapi/oas32/tree"
)

func parseSecurityRequirements(seq []tree.Value) []ir.SecurityRequirement {
	out := make([]ir.SecurityRequirement, 0, len(seq))
	for _, item := range seq {
		if item.Kind != tree.KindMap {
			continue
		}
		req := ir.SecurityRequirement{Schemes: make(map[string][]string, item.Map.Len())}
		for _, key := range item.Map.Keys() {
			req.Schemes[key] = getStringSeq(item.Map, key)
			req.SchemesOrder = append(req.SchemesOrder, key)
		}
		out = append(out, req)
	}
	return out
}

var securitySchemeKnownKeys = map[string]bool{
	"$ref": true, "type": true, "description": true, "name": true, "in": true,
	"scheme": true, "bearerFormat": true, "flows": true, "openIdConnectUrl": true,
	"oauth2MetadataUrl": true, "deprecated": true,
}

func parseSecurityScheme(m *tree.OrderedMap) *ir.SecurityScheme {
	s := &ir.SecurityScheme{
		Description:       getStringDefault(m, "description", ""),
		Name:              getStringDefault(m, "name", ""),
		Scheme:            getStringDefault(m, "scheme", ""),
		BearerFormat:      getStringDefault(m, "bearerFormat", ""),
		OpenIDConnectURL:  getStringDefault(m, "openIdConnectUrl", ""),
		OAuth2MetadataURL: getStringDefault(m, "oauth2MetadataUrl", ""),
		Deprecated:        getBoolDefault(m, "deprecated", false),
	}
	if ref, ok := extractReference(m); ok {
		s.Reference = ref
	}
	s.Type = parseSecuritySchemeType(getStringDefault(m, "type", ""))
	if in, ok := getString(m, "in"); ok {
		s.In = parseParameterLocation(in)
	}
	if fm, ok := getMap(m, "flows"); ok {
		s.Flows = parseOAuthFlows(fm)
	}
	s.Extensions = splitExtensions(m, securitySchemeKnownKeys)
	return s
}

func parseSecuritySchemeType(t string) ir.SecuritySchemeType {
	switch t {
	case "http":
		return ir.SecuritySchemeHTTP
	case "mutualTLS":
		return ir.SecuritySchemeMutualTLS
	case "oauth2":
		return ir.SecuritySchemeOAuth2
	case "openIdConnect":
		return ir.SecuritySchemeOpenIDConnect
	default:
		return ir.SecuritySchemeAPIKey
	}
}

var oauthFlowsKnownKeys = map[string]bool{
	"implicit": true, "password": true, "clientCredentials": true, "authorizationCode": true, "device": true,
}

func parseOAuthFlows(m *tree.OrderedMap) *ir.OAuthFlows {
	f := &ir.OAuthFlows{}
	if fm, ok := getMap(m, "implicit"); ok {
		f.Implicit = parseOAuthFlow(fm)
	}
	if fm, ok := getMap(m, "password"); ok {
		f.Password = parseOAuthFlow(fm)
	}
	if fm, ok := getMap(m, "clientCredentials"); ok {
		f.ClientCredentials = parseOAuthFlow(fm)
	}
	if fm, ok := getMap(m, "authorizationCode"); ok {
		f.AuthorizationCode = parseOAuthFlow(fm)
	}
	if fm, ok := getMap(m, "device"); ok {
		f.Device = parseOAuthFlow(fm)
	}
	f.Extensions = splitExtensions(m, oauthFlowsKnownKeys)
	return f
}

var oauthFlowKnownKeys = map[string]bool{
	"authorizationUrl": true, "tokenUrl": true, "deviceAuthorizationUrl": true, "refreshUrl": true, "scopes": true,
}

func parseOAuthFlow(m *tree.OrderedMap) *ir.OAuthFlow {
	f := &ir.OAuthFlow{
		AuthorizationURL:       getStringDefault(m, "authorizationUrl", ""),
		TokenURL:               getStringDefault(m, "tokenUrl", ""),
		DeviceAuthorizationURL: getStringDefault(m, "deviceAuthorizationUrl", ""),
		RefreshURL:             getStringDefault(m, "refreshUrl", ""),
	}
	if sm, ok := getMap(m, "scopes"); ok {
		f.Scopes = make(map[string]string, sm.Len())
		for _, key := range sm.Keys() {
			v, _ := sm.Get(key)
			if v.Kind == tree.KindString {
				f.Scopes[key] = v.String
				f.ScopesOrder = append(f.ScopesOrder, key)
			}
		}
	}
	f.Extensions = splitExtensions(m, oauthFlowKnownKeys)
	return f
}
