package ir

import "github.com/imdario/mergo"

// Effective overlays the sibling fields declared directly on a
// reference-with-siblings holder (p) onto a copy of the resolved target
// Parameter, per the reference-sibling invariant: sibling fields win, the
// target itself is never mutated. Called as override.Effective(target).
func (p *Parameter) Effective(target *Parameter) (*Parameter, error) {
	if target == nil {
		return p, nil
	}
	if p == nil {
		return target, nil
	}
	merged := *target
	if err := mergo.Merge(&merged, *p, mergo.WithOverride); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Effective overlays h's sibling fields onto a copy of the resolved target
// Header without mutating the target.
func (h *Header) Effective(target *Header) (*Header, error) {
	if target == nil {
		return h, nil
	}
	if h == nil {
		return target, nil
	}
	merged := *target
	if err := mergo.Merge(&merged, *h, mergo.WithOverride); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Effective overlays r's sibling fields onto a copy of the resolved target
// Response without mutating the target.
func (r *Response) Effective(target *Response) (*Response, error) {
	if target == nil {
		return r, nil
	}
	if r == nil {
		return target, nil
	}
	merged := *target
	if err := mergo.Merge(&merged, *r, mergo.WithOverride); err != nil {
		return nil, err
	}
	return &merged, nil
}
