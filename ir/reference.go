package ir

// Reference is the JSON Reference object ($ref + OAS 3.1+ sibling
// summary/description) carried by every Holder alongside its own
// in-line fields. Sibling fields declared directly on the holder
// override the same-named field on the resolved target; Reference
// itself never mutates the target.
type Reference struct {
	// Ref is the raw $ref string, exactly as written (not yet resolved).
	Ref string
	// Summary is a sibling "summary" on the reference object (OAS 3.1+).
	Summary string
	// Description is a sibling "description" on the reference object (OAS 3.1+).
	Description string
	// HasSummary/HasDescription distinguish "sibling absent" from
	// "sibling present but empty string".
	HasSummary     bool
	HasDescription bool
}

// Holder is implemented by every IR entity that may carry a $ref
// alongside its own fields (§3's "holder" concept; see GLOSSARY).
type Holder interface {
	// GetReference returns the holder's Reference, or nil if this holder
	// instance has no $ref.
	GetReference() *Reference
}
