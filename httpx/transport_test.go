// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package httpx_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
	"code.hybscloud.com/eff/httpx"
)

var errTransport = errors.New("transport down")

// failNTimes returns a transport failing the first n calls and a counter.
func failNTimes(n int, resp httpx.Response) (httpx.Transport, *int) {
	calls := new(int)
	return func(httpx.Request) (httpx.Response, error) {
		*calls++
		if *calls <= n {
			return httpx.Response{}, errTransport
		}
		return resp, nil
	}, calls
}

func TestClientSendsDescribedRequest(t *testing.T) {
	var seen *http.Request
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(r.Context())
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("X-Served-By", "test")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "ok")
	}))
	defer srv.Close()

	req := httpx.NewRequest(srv.URL).
		WithMethod(httpx.MethodPost).
		WithHeader("X-Token", "secret").
		WithParam("page", "2").
		WithBody([]byte("payload"))

	resp, err := httpx.Client(srv.Client())(req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "secret", seen.Header.Get("X-Token"))
	assert.Equal(t, "2", seen.URL.Query().Get("page"))
	assert.Equal(t, "payload", string(body))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.False(t, resp.IsError())
	assert.Equal(t, "ok", resp.Body)
	assert.Equal(t, "test", resp.Headers["X-Served-By"])
	assert.Equal(t, req.URL, resp.Request.URL)
}

func TestClientBadURL(t *testing.T) {
	_, err := httpx.Client(nil)(httpx.NewRequest("://not-a-url"))
	require.Error(t, err)
}

func TestDoIsLazyAndNeverFails(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	m := httpx.Get(httpx.Client(srv.Client()), srv.URL)
	require.Zero(t, hits, "describing a request must not send it")

	r, err := m.Run()
	require.NoError(t, err, "transport outcomes surface as Results, not errors")
	require.Equal(t, 1, hits)

	resp, ok := r.Get()
	require.True(t, ok, "an HTTP error status is still a Success at the transport level")
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.True(t, resp.IsError())
}

func TestDoCapturesTransportError(t *testing.T) {
	transport, _ := failNTimes(1, httpx.Response{})
	r, err := httpx.Do(transport, httpx.NewRequest("http://example.test")).Run()
	require.NoError(t, err)
	rerr, ok := r.Err()
	require.True(t, ok)
	assert.ErrorIs(t, rerr, errTransport)
}

func TestVerbHelpers(t *testing.T) {
	var methods []string
	var bodies []string
	transport := func(req httpx.Request) (httpx.Response, error) {
		methods = append(methods, string(req.Method))
		bodies = append(bodies, string(req.Body))
		return httpx.Response{StatusCode: http.StatusOK, Request: req}, nil
	}

	url := "http://example.test"
	for _, m := range []eff.IO[eff.Result[httpx.Response]]{
		httpx.Get(transport, url),
		httpx.Post(transport, url, []byte("p")),
		httpx.Put(transport, url, []byte("u")),
		httpx.Delete(transport, url),
		httpx.Patch(transport, url, []byte("a")),
	} {
		r, err := m.Run()
		require.NoError(t, err)
		assert.True(t, r.IsSuccess())
	}
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "PATCH"}, methods)
	assert.Equal(t, []string{"", "p", "u", "", "a"}, bodies)
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"name":"gopher","count":3}`)
	}))
	defer srv.Close()

	r := mustRunHTTP(t, httpx.FetchJSON(httpx.Client(srv.Client()), srv.URL))
	decoded, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, "gopher", decoded["name"])
	assert.EqualValues(t, 3, decoded["count"])
}

func TestFetchJSONDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer srv.Close()

	r := mustRunHTTP(t, httpx.FetchJSON(httpx.Client(srv.Client()), srv.URL))
	assert.True(t, r.IsFailure())
}

func TestResponseJSON(t *testing.T) {
	good := httpx.Response{Body: `{"ok":true}`}
	decoded, ok := good.JSON().Get()
	require.True(t, ok)
	assert.Equal(t, true, decoded["ok"])

	bad := httpx.Response{Body: "{"}
	assert.True(t, bad.JSON().IsFailure())
}

func mustRunHTTP[A any](t *testing.T, m eff.IO[A]) A {
	t.Helper()
	v, err := m.Run()
	require.NoError(t, err)
	return v
}
