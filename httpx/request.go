// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package httpx

import (
	"maps"
	"time"
)

// Method identifies an HTTP verb.
type Method string

// Supported HTTP methods.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// DefaultTimeout applies to requests built by NewRequest.
const DefaultTimeout = 30 * time.Second

// Request describes an HTTP request: target, verb, headers, query
// parameters, body, and timeout. A Request is a description — nothing is
// sent until a [Transport] consumes it inside a run effect.
//
// Treat a Request as immutable: the With* builders return copies and never
// touch the receiver's maps.
type Request struct {
	URL     string
	Method  Method
	Headers map[string]string
	Params  map[string]string
	Body    []byte
	Timeout time.Duration
}

// NewRequest describes a GET request for url with the default timeout.
func NewRequest(url string) Request {
	return Request{URL: url, Method: MethodGet, Timeout: DefaultTimeout}
}

// WithMethod returns a copy of the request with the verb replaced.
func (r Request) WithMethod(m Method) Request {
	r.Method = m
	return r
}

// WithHeader returns a copy of the request with one header added.
func (r Request) WithHeader(key, value string) Request {
	headers := make(map[string]string, len(r.Headers)+1)
	maps.Copy(headers, r.Headers)
	headers[key] = value
	r.Headers = headers
	return r
}

// WithHeaders returns a copy of the request with the given headers merged
// over the existing ones.
func (r Request) WithHeaders(h map[string]string) Request {
	headers := make(map[string]string, len(r.Headers)+len(h))
	maps.Copy(headers, r.Headers)
	maps.Copy(headers, h)
	r.Headers = headers
	return r
}

// WithParam returns a copy of the request with one query parameter added.
func (r Request) WithParam(key, value string) Request {
	params := make(map[string]string, len(r.Params)+1)
	maps.Copy(params, r.Params)
	params[key] = value
	r.Params = params
	return r
}

// WithBody returns a copy of the request with the body replaced.
func (r Request) WithBody(body []byte) Request {
	r.Body = body
	return r
}

// WithTimeout returns a copy of the request with the timeout replaced.
func (r Request) WithTimeout(d time.Duration) Request {
	r.Timeout = d
	return r
}
