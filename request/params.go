// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// Params is an ordered, single-valued string-to-string mapping used
// for Request.Parameters. Insertion order is preserved across Set
// calls and reported by Keys. Request.ToHTTPRequest does not keep that
// order in the query string: it encodes parameters sorted by key.
type Params struct {
	keys []string
	vals map[string]string
}

// NewParams returns an empty Params collection.
func NewParams() *Params {
	return &Params{vals: make(map[string]string)}
}

// Set assigns value to key, appending key to the iteration order the
// first time it is seen.
func (p *Params) Set(key, value string) {
	if p.vals == nil {
		p.vals = make(map[string]string)
	}
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = value
}

// Get returns the value associated with key, and whether key is
// present.
func (p *Params) Get(key string) (string, bool) {
	if p == nil || p.vals == nil {
		return "", false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Del removes key, if present.
func (p *Params) Del(key string) {
	if p == nil || p.vals == nil {
		return
	}
	if _, ok := p.vals[key]; !ok {
		return
	}
	delete(p.vals, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the parameter keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone returns a deep copy of p which shares no mutable state with
// it. Cloning a nil *Params returns an empty, non-nil Params.
func (p *Params) Clone() *Params {
	c := NewParams()
	if p == nil {
		return c
	}
	c.keys = make([]string, len(p.keys))
	copy(c.keys, p.keys)
	for k, v := range p.vals {
		c.vals[k] = v
	}
	return c
}
