package ir

// Response describes a single response from an API operation.
type Response struct {
	Reference *Reference

	Description string

	Headers      map[string]*HeaderOrRef
	HeadersOrder []string

	// ContentPresent distinguishes "content" being entirely absent from
	// "content": {} (present, empty).
	ContentPresent bool
	Content        map[string]*MediaType
	ContentOrder   []string

	Links      map[string]*LinkOrRef
	LinksOrder []string

	// Type is the target-language-agnostic type descriptor the parser
	// infers from the response's content (e.g. "ByteArray", "List<String>",
	// "<Pet>"); empty when no content media type yields an inference. It is
	// a parser-derived convenience, never a serialized OpenAPI keyword.
	Type string

	Extensions map[string]any
}

func (r *Response) GetReference() *Reference { return r.Reference }
