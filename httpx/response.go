// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package httpx

import (
	"encoding/json"

	"code.hybscloud.com/eff"
)

// Response describes an HTTP response paired with the request that
// produced it.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
	Request    Request
}

// IsSuccess reports whether the status code is 2xx.
func (r Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError reports whether the status code is 4xx or 5xx.
func (r Response) IsError() bool {
	return r.StatusCode >= 400
}

// JSON parses the body as a JSON object. A decode error becomes a Failure.
func (r Response) JSON() eff.Result[map[string]any] {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(r.Body), &decoded); err != nil {
		return eff.Failure[map[string]any](err)
	}
	return eff.Success(decoded)
}
