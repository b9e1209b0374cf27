// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package script implements an interceptor.Interceptor that runs a
// user-supplied JavaScript snippet around an execution, for header
// injection or lightweight request shaping without a recompile.
//
// Each hook gets its own fresh *goja.Runtime, so a snippet cannot leak
// state between hooks or between concurrent executions; a snippet that
// needs to carry state across hooks should do so through the request's
// own headers or parameters.
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/nimbussdk/httpcore/request"
	"github.com/nimbussdk/httpcore/transport"
)

// Source holds the JavaScript snippets run at each hook. Any snippet
// left empty makes that hook a no-op. Each snippet runs as a top-level
// script: it receives its arguments bound as global values (request,
// response, err), and its completion value is ignored.
type Source struct {
	BeforeRequest  string
	AfterResponse  string
	AfterError     string
}

// Interceptor runs Source's snippets at the corresponding hook.
type Interceptor struct {
	Source Source

	credentials       interface{}
	wantsCredentials  bool
}

// New returns an Interceptor running src's snippets. If wantsCredentials
// is true, the execution's credentials are exposed to every snippet as
// the global value "credentials".
func New(src Source, wantsCredentials bool) *Interceptor {
	return &Interceptor{Source: src, wantsCredentials: wantsCredentials}
}

// WantsCredentials implements interceptor.CredentialAware.
func (i *Interceptor) WantsCredentials() bool { return i.wantsCredentials }

// SetCredentials implements interceptor.CredentialAware.
func (i *Interceptor) SetCredentials(credentials interface{}) { i.credentials = credentials }

// BeforeRequest implements interceptor.Interceptor.
func (i *Interceptor) BeforeRequest(r *request.Request) error {
	if i.Source.BeforeRequest == "" {
		return nil
	}
	vm := i.newRuntime()
	_ = vm.Set("request", requestBinding(r))
	if _, err := vm.RunString(i.Source.BeforeRequest); err != nil {
		return fmt.Errorf("script: beforeRequest: %w", err)
	}
	applyRequestBinding(vm, r)
	return nil
}

// AfterResponse implements interceptor.Interceptor.
func (i *Interceptor) AfterResponse(r *request.Request, resp *transport.HTTPResponse) error {
	if i.Source.AfterResponse == "" {
		return nil
	}
	vm := i.newRuntime()
	_ = vm.Set("request", requestBinding(r))
	_ = vm.Set("response", responseBinding(resp))
	if _, err := vm.RunString(i.Source.AfterResponse); err != nil {
		return fmt.Errorf("script: afterResponse: %w", err)
	}
	return nil
}

// AfterError implements interceptor.Interceptor.
func (i *Interceptor) AfterError(r *request.Request, resp *transport.HTTPResponse, execErr error) error {
	if i.Source.AfterError == "" {
		return nil
	}
	vm := i.newRuntime()
	_ = vm.Set("request", requestBinding(r))
	if resp != nil {
		_ = vm.Set("response", responseBinding(resp))
	}
	errMsg := ""
	if execErr != nil {
		errMsg = execErr.Error()
	}
	_ = vm.Set("err", errMsg)
	if _, err := vm.RunString(i.Source.AfterError); err != nil {
		return fmt.Errorf("script: afterError: %w", err)
	}
	return nil
}

func (i *Interceptor) newRuntime() *goja.Runtime {
	vm := goja.New()
	if i.wantsCredentials {
		_ = vm.Set("credentials", i.credentials)
	}
	return vm
}

// requestBinding exposes the mutable parts of r a snippet is allowed to
// touch: headers and parameters, by name.
type requestView struct {
	Headers    map[string]string
	Parameters map[string]string
}

func requestBinding(r *request.Request) *requestView {
	v := &requestView{
		Headers:    map[string]string{},
		Parameters: map[string]string{},
	}
	for name := range r.Headers {
		v.Headers[name] = r.Headers.Get(name)
	}
	for _, k := range r.Parameters.Keys() {
		val, _ := r.Parameters.Get(k)
		v.Parameters[k] = val
	}
	return v
}

// applyRequestBinding writes back any headers or parameters a
// beforeRequest snippet added or changed on the bound "request" global.
func applyRequestBinding(vm *goja.Runtime, r *request.Request) {
	val := vm.Get("request")
	if val == nil {
		return
	}
	var v requestView
	if err := vm.ExportTo(val, &v); err != nil {
		return
	}
	for name, value := range v.Headers {
		r.Headers.Set(name, value)
	}
	for k, value := range v.Parameters {
		r.Parameters.Set(k, value)
	}
}

type responseView struct {
	StatusCode int
	Header     map[string]string
}

func responseBinding(resp *transport.HTTPResponse) *responseView {
	v := &responseView{StatusCode: resp.StatusCode, Header: map[string]string{}}
	for name := range resp.Header {
		v.Header[name] = resp.Header.Get(name)
	}
	return v
}
