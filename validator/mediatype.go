package validator

import (
	"strings"

	"github.com/kestrelapi/oas32/internal/httoken"
	"github.com/kestrelapi/oas32/ir"
)

// validateMediaType validates a single content map entry. The essence
// passed on is the raw media-type key it was stored under, taken from path
// after its last ".content." segment ("" for a components.mediaTypes
// entry with no implied key), used for the itemSchema/encoding
// applicability rules that key off the media type itself.
func (c *validateCtx) validateMediaType(mt *ir.MediaType, path string) {
	essence := ""
	if idx := strings.LastIndex(path, ".content."); idx >= 0 {
		essence = path[idx+len(".content."):]
	}
	c.validateMediaTypeForEssence(mt, path, essence)
}

func pathTail(path string) string {
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func (c *validateCtx) validateMediaTypeForEssence(mt *ir.MediaType, path, essence string) {
	if mt == nil {
		return
	}
	if ref := mt.GetReference(); ref != nil {
		if mt.Schema != nil || mt.ExamplePresent || len(mt.Examples) > 0 || len(mt.Encoding) > 0 {
			c.addWarning(path, "media type $ref %q is used alongside other fields", ref.Ref)
		}
		c.checkRef(path, ref.Ref)
		return
	}

	lineDelimited := httoken.IsLineDelimitedEssence(essence)
	if mt.ItemSchema != nil && !lineDelimited {
		c.addError(path+".itemSchema", "itemSchema is only valid on a sequential/line-delimited media type, got %q", essence)
	}

	isMultipart := strings.HasPrefix(essence, "multipart/")
	isFormURLEncoded := essence == "application/x-www-form-urlencoded"

	if mt.ItemEncoding != nil && !isMultipart {
		c.addError(path+".itemEncoding", "itemEncoding is only valid on multipart/* media types")
	}
	if len(mt.Encoding) > 0 && !isMultipart && !isFormURLEncoded {
		c.addWarning(path+".encoding", "encoding only applies to multipart/* and application/x-www-form-urlencoded media types")
	}
	if len(mt.Encoding) > 0 && mt.ItemEncoding != nil {
		c.addError(path, "encoding and itemEncoding are mutually exclusive")
	}

	c.validateExampleHolder(path, mt.ExamplePresent, mt.Example, mt.Examples, mt.ExamplesOrder)
	if mt.Schema != nil {
		c.validateSchema(mt.Schema, path+".schema")
	}
	for _, name := range mt.EncodingOrder {
		c.validateEncoding(mt.Encoding[name], path+".encoding."+name, mt.Schema)
	}
	if mt.ItemEncoding != nil {
		c.validateEncoding(mt.ItemEncoding, path+".itemEncoding", mt.ItemSchema)
	}
}

func (c *validateCtx) validateEncoding(e *ir.EncodingObject, path string, schema *ir.Schema) {
	if e == nil {
		return
	}
	if schema != nil && len(schema.Properties) > 0 {
		propName := pathTail(path)
		if _, ok := schema.Properties[propName]; !ok {
			c.addWarning(path, "encoding entry %q is not a property of the associated schema", propName)
		}
	}
	if len(e.PrefixEncoding) > 0 {
		if schema == nil || len(schema.PrefixItems) == 0 {
			c.addError(path+".prefixEncoding", "prefixEncoding requires an array schema with prefixItems")
		}
	}
	for _, h := range e.HeadersOrder {
		c.validateHeaderOrRef(e.Headers[h], path+".headers."+h)
	}
}
