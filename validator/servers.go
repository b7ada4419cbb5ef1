package validator

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kestrelapi/oas32/ir"
)

// validateServers checks a Server list found either at the document root,
// a PathItem, or an Operation.
func (c *validateCtx) validateServers(servers []*ir.Server, path string) {
	seenNames := map[string]bool{}
	for i, srv := range servers {
		srvPath := indexPath(path, i)
		c.validateServer(srv, srvPath)
		if srv.Name != "" {
			if seenNames[srv.Name] {
				c.addError(srvPath+".name", "duplicate server name %q", srv.Name)
			}
			seenNames[srv.Name] = true
		}
	}
}

func (c *validateCtx) validateServer(srv *ir.Server, path string) {
	if srv == nil {
		return
	}
	if !uriTemplateParses(srv.URL) {
		c.addError(path+".url", "server url %q is not a syntactically valid URI template", srv.URL)
	}
	if u, err := url.Parse(stripTemplateBraces(srv.URL)); err == nil {
		if u.RawQuery != "" {
			c.addError(path+".url", "server url must not contain a query string: %q", srv.URL)
		}
		if u.Fragment != "" {
			c.addError(path+".url", "server url must not contain a fragment: %q", srv.URL)
		}
	}

	names := pathTemplateNames(srv.URL)
	inURL := map[string]bool{}
	for _, n := range names {
		inURL[n] = true
	}

	seen := map[string]bool{}
	for _, name := range srv.VariablesOrder {
		if strings.ContainsAny(name, "{}") {
			c.addError(path+".variables", "server variable name %q must not contain '{' or '}'", name)
		}
		if seen[name] {
			c.addError(path+".variables", "duplicate server variable name %q", name)
		}
		seen[name] = true
		if !inURL[name] {
			c.addWarning(path+".variables."+name, "server variable %q is not referenced by the url template", name)
		}
		v := srv.Variables[name]
		if v == nil {
			continue
		}
		if len(v.Enum) > 0 && v.Default != "" && !containsString(v.Enum, v.Default) {
			c.addError(path+".variables."+name+".default", "default %q is not one of enum %v", v.Default, v.Enum)
		}
	}
	for name := range inURL {
		if !seen[name] {
			c.addError(path+".url", "server url references undefined variable %q", name)
		}
	}
}

func stripTemplateBraces(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
