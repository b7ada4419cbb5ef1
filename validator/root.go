package validator

import (
	"github.com/kestrelapi/oas32/internal/maputil"
	"github.com/kestrelapi/oas32/internal/semver"
)

// validateRoot is the entry point for the full rule catalog, dispatching
// section by section in the order spec.md presents them.
func (c *validateCtx) validateRoot() {
	c.validateVersion()
	c.validateRootPresence()
	c.validateInfo()
	c.validateServers(c.def.Servers, "servers")
	c.validatePaths()
	c.validateWebhooks()
	c.validateComponents()
	c.validateRootSecurity()
	c.validateRootURIs()
}

func (c *validateCtx) validateVersion() {
	v, err := semver.Parse(c.def.OpenAPI)
	if err != nil || !v.Is32() {
		c.addWarning("openapi", "openapi version %q does not match 3.2.x", c.def.OpenAPI)
	}
}

func (c *validateCtx) validateRootPresence() {
	hasPaths := c.def.Paths != nil || c.def.PathsExplicitEmpty
	hasWebhooks := c.def.Webhooks != nil || c.def.WebhooksExplicitEmpty
	hasComponents := c.def.Components != nil
	if !hasPaths && !hasWebhooks && !hasComponents {
		c.addError("", "document must define at least one of paths, webhooks, or components")
	}
}

func (c *validateCtx) validateInfo() {
	info := c.def.Info
	if info == nil {
		c.addError("info", "info object is required")
		return
	}
	if info.Title == "" {
		c.addError("info.title", "info.title is required and must not be blank")
	}
	if info.Version == "" {
		c.addError("info.version", "info.version is required and must not be blank")
	}
	if info.TermsOfService != "" && !isValidURL(info.TermsOfService) {
		c.addError("info.termsOfService", "info.termsOfService is not a valid URL: %q", info.TermsOfService)
	}
	if info.Contact != nil {
		if info.Contact.URL != "" && !isValidURL(info.Contact.URL) {
			c.addError("info.contact.url", "info.contact.url is not a valid URL: %q", info.Contact.URL)
		}
		if info.Contact.Email != "" && !isValidEmail(info.Contact.Email) {
			c.addError("info.contact.email", "info.contact.email is not a valid email: %q", info.Contact.Email)
		}
	}
	if info.License != nil {
		if info.License.Identifier != "" && info.License.URL != "" {
			c.addError("info.license", "license must not define both identifier and url")
		}
		if info.License.URL != "" && !isValidURL(info.License.URL) {
			c.addError("info.license.url", "info.license.url is not a valid URL: %q", info.License.URL)
		}
		if info.License.Identifier != "" && !isValidSPDXLicense(info.License.Identifier) {
			c.addError("info.license.identifier", "info.license.identifier is not a valid SPDX identifier: %q", info.License.Identifier)
		}
	}
}

func (c *validateCtx) validateRootURIs() {
	if c.def.Self != "" && !isValidURL(c.def.Self) {
		c.addError("self", "self is not a valid URI: %q", c.def.Self)
	}
	if c.def.ExternalDocs != nil && c.def.ExternalDocs.URL != "" && !isValidURL(c.def.ExternalDocs.URL) {
		c.addError("externalDocs.url", "externalDocs.url is not a valid URI: %q", c.def.ExternalDocs.URL)
	}
}

func (c *validateCtx) validateComponents() {
	comp := c.def.Components
	if comp == nil {
		return
	}
	for _, name := range sortedKeys(comp.Schemas) {
		c.validateSchema(comp.Schemas[name], "components.schemas."+name)
	}
	for _, name := range sortedKeys(comp.Responses) {
		c.validateResponse(comp.Responses[name], "components.responses."+name)
	}
	for _, name := range sortedKeys(comp.Parameters) {
		c.validateParameter(comp.Parameters[name], "components.parameters."+name, nil)
	}
	for _, name := range sortedKeys(comp.Examples) {
		c.validateExample(comp.Examples[name], "components.examples."+name)
	}
	for _, name := range sortedKeys(comp.RequestBodies) {
		c.validateRequestBody(comp.RequestBodies[name], "components.requestBodies."+name)
	}
	for _, name := range sortedKeys(comp.Headers) {
		c.validateHeader(comp.Headers[name], "components.headers."+name)
	}
	for _, name := range sortedKeys(comp.SecuritySchemes) {
		c.validateSecurityScheme(comp.SecuritySchemes[name], "components.securitySchemes."+name, name)
	}
	for _, name := range sortedKeys(comp.Links) {
		c.validateLink(comp.Links[name], "components.links."+name)
	}
	for _, name := range sortedKeys(comp.Callbacks) {
		c.validateCallback(comp.Callbacks[name], "components.callbacks."+name)
	}
	for _, name := range sortedKeys(comp.PathItems) {
		c.validatePathItem(name, comp.PathItems[name], "components.pathItems."+name, false)
	}
	for _, name := range sortedKeys(comp.MediaTypes) {
		c.validateMediaType(comp.MediaTypes[name], "components.mediaTypes."+name)
	}
}

func (c *validateCtx) validateRootSecurity() {
	if c.def.Security == nil && !c.def.SecurityExplicitEmpty {
		return
	}
	c.validateSecurityRequirements(c.def.Security, "security")
}

// sortedKeys returns the keys of m in sorted order, giving the validator
// deterministic traversal over Go's randomized map iteration wherever a
// *Order slice is not (yet) threaded through to a call site.
func sortedKeys[V any](m map[string]V) []string {
	return maputil.SortedKeys(m)
}
