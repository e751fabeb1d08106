// Copyright (C) 2025 The roleaudit Authors
//
// This file is part of roleaudit.
//
// roleaudit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// roleaudit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"roleaudit/constants"
)

// NewRequest creates an http.Request with the given query parameters and
// headers applied. A url.Values body is form-encoded, anything else is
// marshalled as JSON.
func NewRequest(ctx context.Context, verb string, endpoint *url.URL, body interface{}, params map[string]string, headers map[string]string) (*http.Request, error) {
	if len(params) > 0 {
		values := endpoint.Query()
		for key, value := range params {
			values.Set(key, value)
		}
		endpoint.RawQuery = values.Encode()
	}

	var (
		reader      io.Reader
		contentType string
	)

	switch typed := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(typed.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		buffer := &bytes.Buffer{}
		if err := json.NewEncoder(buffer).Encode(body); err != nil {
			return nil, err
		}
		reader = buffer
		contentType = "application/json"
	}

	if req, err := http.NewRequestWithContext(ctx, verb, endpoint.String(), reader); err != nil {
		return nil, err
	} else {
		req.Header.Set("User-Agent", constants.UserAgent())
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return req, nil
	}
}
