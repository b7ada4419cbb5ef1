package ir

// HTTPMethod enumerates the HTTP methods a PathItem can bind an Operation
// to, including "query" (OAS 3.2+) and an escape hatch for additional,
// non-standard methods carried by additionalOperations (OAS 3.2+).
type HTTPMethod int

const (
	MethodGet HTTPMethod = iota
	MethodPut
	MethodPost
	MethodDelete
	MethodOptions
	MethodHead
	MethodPatch
	MethodTrace
	MethodQuery
	// MethodCustom marks an entry whose verb came from additionalOperations
	// and is not one of the fixed OAS keywords; the verb itself lives in
	// AdditionalOperations' map key, not in this enum.
	MethodCustom
)

func (m HTTPMethod) String() string {
	switch m {
	case MethodGet:
		return "get"
	case MethodPut:
		return "put"
	case MethodPost:
		return "post"
	case MethodDelete:
		return "delete"
	case MethodOptions:
		return "options"
	case MethodHead:
		return "head"
	case MethodPatch:
		return "patch"
	case MethodTrace:
		return "trace"
	case MethodQuery:
		return "query"
	default:
		return "custom"
	}
}

// PathItem describes the operations available on a single path, or acts as
// a $ref to a reusable one (OAS 3.1+ components.pathItems).
type PathItem struct {
	Reference *Reference

	Summary     string
	Description string

	Get     *Operation
	Put     *Operation
	Post    *Operation
	Delete  *Operation
	Options *Operation
	Head    *Operation
	Patch   *Operation
	Trace   *Operation
	// Query is the OAS 3.2+ QUERY method.
	Query *Operation

	// AdditionalOperations holds verbs (e.g. "PURGE") bound via the
	// additionalOperations keyword (OAS 3.2+), keyed by the verb exactly as
	// written in the source.
	AdditionalOperations      map[string]*Operation
	AdditionalOperationsOrder []string

	Servers    []*Server
	Parameters []*ParameterOrRef

	Extensions map[string]any
}

func (p *PathItem) GetReference() *Reference { return p.Reference }

// Operations returns every bound Operation in canonical (get, put, post,
// delete, options, head, patch, trace, query, then additionalOperations in
// source order) order together with its method label.
func (p *PathItem) Operations() []struct {
	Method HTTPMethod
	Verb   string
	Op     *Operation
} {
	var out []struct {
		Method HTTPMethod
		Verb   string
		Op     *Operation
	}
	add := func(m HTTPMethod, op *Operation) {
		if op != nil {
			out = append(out, struct {
				Method HTTPMethod
				Verb   string
				Op     *Operation
			}{m, m.String(), op})
		}
	}
	add(MethodGet, p.Get)
	add(MethodPut, p.Put)
	add(MethodPost, p.Post)
	add(MethodDelete, p.Delete)
	add(MethodOptions, p.Options)
	add(MethodHead, p.Head)
	add(MethodPatch, p.Patch)
	add(MethodTrace, p.Trace)
	add(MethodQuery, p.Query)
	for _, verb := range p.AdditionalOperationsOrder {
		if op := p.AdditionalOperations[verb]; op != nil {
			out = append(out, struct {
				Method HTTPMethod
				Verb   string
				Op     *Operation
			}{MethodCustom, verb, op})
		}
	}
	return out
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string
	Summary     string
	Description string

	ExternalDocs *ExternalDocs

	// OperationID is the effective value: either the declared one, or a
	// synthesized one when OperationIDExplicit is false.
	OperationID string
	// OperationIDExplicit distinguishes a user-provided operationId from
	// one synthesized by the parser; the writer omits the field entirely
	// when this is false.
	OperationIDExplicit bool

	Parameters []*ParameterOrRef
	RequestBody *RequestBodyOrRef

	// Responses maps a status key ("200", "default", "4XX", ...) to its
	// Response. Order is preserved via ResponsesOrder.
	Responses      map[string]*ResponseOrRef
	ResponsesOrder []string

	Callbacks      map[string]*Callback
	CallbacksOrder []string

	Deprecated bool

	// Security is nil when the operation inherits the root/document
	// requirement, a zero-length non-nil slice when present-empty
	// (explicitly disables auth for this operation), and populated
	// otherwise.
	Security []SecurityRequirement

	Servers []*Server

	Extensions map[string]any
}

// ParameterOrRef is a Parameter that may instead be a bare $ref to a
// reusable components.parameters entry.
type ParameterOrRef struct {
	Reference *Reference
	Inline    *Parameter
}

func (p *ParameterOrRef) GetReference() *Reference {
	if p == nil {
		return nil
	}
	return p.Reference
}

// RequestBodyOrRef is a RequestBody that may instead be a bare $ref.
type RequestBodyOrRef struct {
	Reference *Reference
	Inline    *RequestBody
}

func (r *RequestBodyOrRef) GetReference() *Reference {
	if r == nil {
		return nil
	}
	return r.Reference
}

// ResponseOrRef is a Response that may instead be a bare $ref.
type ResponseOrRef struct {
	Reference *Reference
	Inline    *Response
}

func (r *ResponseOrRef) GetReference() *Reference {
	if r == nil {
		return nil
	}
	return r.Reference
}
