// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"code.hybscloud.com/eff"
)

// Transport is the single collaborator signature this package consumes: a
// synchronous function from a request description to a response
// description or an error. Tests substitute their own; production code
// uses [Client].
type Transport func(Request) (Response, error)

// Client adapts a net/http client into a Transport. The per-request
// Timeout is honored through a request context; headers and query
// parameters are applied as described. A nil client uses
// http.DefaultClient.
func Client(c *http.Client) Transport {
	if c == nil {
		c = http.DefaultClient
	}
	return func(req Request) (Response, error) {
		target, err := url.Parse(req.URL)
		if err != nil {
			return Response{}, err
		}
		if len(req.Params) > 0 {
			query := target.Query()
			for k, v := range req.Params {
				query.Set(k, v)
			}
			target.RawQuery = query.Encode()
		}

		ctx := context.Background()
		if req.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, req.Timeout)
			defer cancel()
		}

		method := req.Method
		if method == "" {
			method = MethodGet
		}
		httpReq, err := http.NewRequestWithContext(ctx, string(method), target.String(), bytes.NewReader(req.Body))
		if err != nil {
			return Response{}, err
		}
		for k, v := range req.Headers {
			httpReq.Header.Set(k, v)
		}

		httpResp, err := c.Do(httpReq)
		if err != nil {
			return Response{}, err
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return Response{}, err
		}
		headers := make(map[string]string, len(httpResp.Header))
		for k := range httpResp.Header {
			headers[k] = httpResp.Header.Get(k)
		}
		return Response{
			StatusCode: httpResp.StatusCode,
			Headers:    headers,
			Body:       string(body),
			Request:    req,
		}, nil
	}
}

// Do describes executing one request through the transport. The request
// is not sent until the effect runs; a transport error is converted into a
// Failure at the point of invocation, so the returned effect never fails.
func Do(t Transport, req Request) eff.IO[eff.Result[Response]] {
	return eff.Attempt(eff.Suspend(func() (Response, error) {
		return t(req)
	}))
}

// Get describes a GET request for url.
func Get(t Transport, url string) eff.IO[eff.Result[Response]] {
	return Do(t, NewRequest(url))
}

// Post describes a POST request with the given body.
func Post(t Transport, url string, body []byte) eff.IO[eff.Result[Response]] {
	return Do(t, NewRequest(url).WithMethod(MethodPost).WithBody(body))
}

// Put describes a PUT request with the given body.
func Put(t Transport, url string, body []byte) eff.IO[eff.Result[Response]] {
	return Do(t, NewRequest(url).WithMethod(MethodPut).WithBody(body))
}

// Delete describes a DELETE request for url.
func Delete(t Transport, url string) eff.IO[eff.Result[Response]] {
	return Do(t, NewRequest(url).WithMethod(MethodDelete))
}

// Patch describes a PATCH request with the given body.
func Patch(t Transport, url string, body []byte) eff.IO[eff.Result[Response]] {
	return Do(t, NewRequest(url).WithMethod(MethodPatch).WithBody(body))
}

// FetchJSON describes fetching url and decoding the response body as a
// JSON object. Transport errors and decode errors both surface as a
// Failure.
func FetchJSON(t Transport, url string) eff.IO[eff.Result[map[string]any]] {
	return eff.Map(Get(t, url), func(r eff.Result[Response]) eff.Result[map[string]any] {
		return eff.FlatMapResult(r, Response.JSON)
	})
}
