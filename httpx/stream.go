// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package httpx

import "code.hybscloud.com/eff"

// RequestStream is a lazy stream of request descriptions bound to a
// transport. Composition transforms the descriptions; nothing is sent
// until an Execute effect runs.
type RequestStream struct {
	transport Transport
	requests  eff.Stream[Request]
}

// NewRequestStream binds a stream of requests to a transport.
func NewRequestStream(t Transport, requests eff.Stream[Request]) RequestStream {
	return RequestStream{transport: t, requests: requests}
}

// FromURLs creates a request stream of GET requests over the given URLs.
func FromURLs(t Transport, urls []string) RequestStream {
	requests := eff.MapStream(eff.FromSlice(urls), NewRequest)
	return RequestStream{transport: t, requests: requests}
}

// Single creates a request stream holding one request.
func Single(t Transport, req Request) RequestStream {
	return RequestStream{transport: t, requests: eff.PureStream(req)}
}

// Requests exposes the underlying request descriptions.
func (s RequestStream) Requests() eff.Stream[Request] {
	return s.requests
}

// MapRequest transforms each request description.
func (s RequestStream) MapRequest(f func(Request) Request) RequestStream {
	return RequestStream{transport: s.transport, requests: eff.MapStream(s.requests, f)}
}

// FilterRequest keeps only the requests matching the predicate.
func (s RequestStream) FilterRequest(predicate func(Request) bool) RequestStream {
	return RequestStream{transport: s.transport, requests: s.requests.Filter(predicate)}
}

// WithHeaders merges headers into every request.
func (s RequestStream) WithHeaders(h map[string]string) RequestStream {
	return s.MapRequest(func(r Request) Request {
		return r.WithHeaders(h)
	})
}

// WithAuth adds a Bearer authorization header to every request.
func (s RequestStream) WithAuth(token string) RequestStream {
	return s.MapRequest(func(r Request) Request {
		return r.WithHeader("Authorization", "Bearer "+token)
	})
}

// WithRetry wraps each executed request with sequential retry.
// The retry policy applies at execution time; descriptions are unchanged.
func (s RequestStream) WithRetry(maxAttempts int) RequestStream {
	transport := s.transport
	retried := func(req Request) (Response, error) {
		return eff.Retry(eff.Suspend(func() (Response, error) {
			return transport(req)
		}), maxAttempts)()
	}
	return RequestStream{transport: retried, requests: s.requests}
}

// Take bounds the stream to its first n requests.
func (s RequestStream) Take(n int) RequestStream {
	return RequestStream{transport: s.transport, requests: s.requests.Take(n)}
}

// Execute describes running the requests one by one, lazily: the returned
// stream sends a request each time an element is pulled, in request order.
// Re-traversing the stream re-sends the requests.
func (s RequestStream) Execute() eff.IO[eff.Stream[eff.Result[Response]]] {
	transport := s.transport
	requests := s.requests
	return eff.Suspend(func() (eff.Stream[eff.Result[Response]], error) {
		responses := eff.MapStream(requests, func(req Request) eff.Result[Response] {
			resp, err := transport(req)
			if err != nil {
				return eff.Failure[Response](err)
			}
			return eff.Success(resp)
		})
		return responses, nil
	})
}

// ExecuteParallel describes running all requests on a bounded worker pool.
// Results arrive in completion order, one Result per request; a failed
// request never aborts its siblings. Panics if workers < 1 when run.
func (s RequestStream) ExecuteParallel(workers int) eff.IO[[]eff.Result[Response]] {
	transport := s.transport
	requests := s.requests
	return eff.Suspend(func() ([]eff.Result[Response], error) {
		pending := requests.Collect()
		effects := make([]eff.IO[eff.Result[Response]], len(pending))
		for i, req := range pending {
			effects[i] = Do(transport, req)
		}
		return eff.ParallelSequence(workers, effects)()
	})
}
