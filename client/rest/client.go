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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"roleaudit/client/config"
	"roleaudit/client/query"
)

// AzPowerShellClientID is the well-known public client used when exchanging
// refresh tokens or user credentials without an app registration of our own.
const AzPowerShellClientID = "1950a258-227b-4e31-a9cf-717495945fc2"

type RestClient interface {
	Get(ctx context.Context, path string, params query.Params, headers map[string]string) (*http.Response, error)
	Post(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error)
	Send(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

func NewRestClient(apiUrl string, config config.Config) (RestClient, error) {
	if auth, err := url.Parse(config.AuthorityUrl()); err != nil {
		return nil, err
	} else if api, err := url.Parse(apiUrl); err != nil {
		return nil, err
	} else if http, err := NewHTTPClient(config.ProxyUrl); err != nil {
		return nil, err
	} else {
		client := &restClient{
			api:    *api,
			auth:   *auth,
			config: config,
			http:   http,
		}
		return client, nil
	}
}

type restClient struct {
	api    url.URL
	auth   url.URL
	config config.Config
	http   *http.Client
	token  Token
	mutex  sync.Mutex
}

func (s *restClient) Get(ctx context.Context, path string, params query.Params, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	paramsMap := make(map[string]string)

	if params != nil {
		paramsMap = params.AsMap()
		if params.NeedsEventualConsistencyHeaderFlag() {
			if headers == nil {
				headers = make(map[string]string)
			}
			headers["ConsistencyLevel"] = "eventual"
		}
	}

	if req, err := NewRequest(ctx, http.MethodGet, endpoint, nil, paramsMap, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Post(ctx context.Context, path string, body interface{}, params query.Params, headers map[string]string) (*http.Response, error) {
	endpoint := s.api.ResolveReference(&url.URL{Path: path})
	paramsMap := make(map[string]string)
	if params != nil {
		paramsMap = params.AsMap()
	}
	if req, err := NewRequest(ctx, http.MethodPost, endpoint, body, paramsMap, headers); err != nil {
		return nil, err
	} else {
		return s.Send(req)
	}
}

func (s *restClient) Send(req *http.Request) (*http.Response, error) {
	if err := s.addAuthenticationToRequest(req); err != nil {
		return nil, err
	}
	return s.send(req)
}

func (s *restClient) addAuthenticationToRequest(req *http.Request) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.token.IsExpired() {
		if token, err := s.authenticate(req.Context()); err != nil {
			return fmt.Errorf("unable to authenticate: %w", err)
		} else {
			s.token = token
		}
	}

	req.Header.Set("Authorization", fmt.Sprintf("%s %s", s.token.Type(), s.token.String()))
	return nil
}

// authenticate performs the OAuth2 token exchange matching whichever
// credential the session configuration carries.
func (s *restClient) authenticate(ctx context.Context) (Token, error) {
	var token Token

	if s.config.JWT != "" {
		return StaticToken(s.config.JWT), nil
	}

	var (
		endpoint = s.auth.ResolveReference(&url.URL{Path: fmt.Sprintf("%s/oauth2/v2.0/token", s.auth.Path)})
		clientId = s.config.ApplicationId
		body     = url.Values{}
	)

	if clientId == "" {
		clientId = AzPowerShellClientID
	}

	body.Set("client_id", clientId)
	body.Set("scope", fmt.Sprintf("%s://%s/.default", s.api.Scheme, s.api.Host))

	switch {
	case s.config.RefreshToken != "":
		body.Set("grant_type", "refresh_token")
		body.Set("refresh_token", s.config.RefreshToken)
	case s.config.ClientSecret != "":
		body.Set("grant_type", "client_credentials")
		body.Set("client_secret", s.config.ClientSecret)
	case s.config.ClientCert != "" && s.config.ClientKey != "":
		if assertion, err := NewClientAssertion(endpoint.String(), clientId, s.config.ClientCert, s.config.ClientKey, s.config.ClientKeyPass); err != nil {
			return token, err
		} else {
			body.Set("grant_type", "client_credentials")
			body.Set("client_assertion_type", "urn:ietf:params:oauth:client-assertion-type:jwt-bearer")
			body.Set("client_assertion", assertion)
		}
	case s.config.Username != "" && s.config.Password != "":
		body.Set("grant_type", "password")
		body.Set("username", s.config.Username)
		body.Set("password", s.config.Password)
	default:
		return token, fmt.Errorf("no valid credential provided")
	}

	if req, err := NewRequest(ctx, http.MethodPost, endpoint, body, nil, nil); err != nil {
		return token, err
	} else if res, err := s.send(req); err != nil {
		return token, err
	} else if err := Decode(res.Body, &token); err != nil {
		return token, err
	} else {
		return token, nil
	}
}

func (s *restClient) send(req *http.Request) (*http.Response, error) {
	// copy the bytes in case we need to retry the request
	if body, err := CopyBody(req); err != nil {
		return nil, err
	} else {
		var (
			res        *http.Response
			err        error
			maxRetries = 3
		)
		// Try the request up to a set number of times
		for retry := 0; retry < maxRetries; retry++ {

			// Reusing http.Request requires rewinding the request body
			// back to a working state
			if body != nil && retry > 0 {
				req.Body = io.NopCloser(bytes.NewBuffer(body))
			}

			// Try the request
			if res, err = s.http.Do(req); err != nil {
				if IsClosedConnectionErr(err) || IsGoAwayErr(err) {
					fmt.Printf("remote host interrupted the connection while requesting %s; attempt %d/%d; trying again\n", req.URL, retry+1, maxRetries)
					ExponentialBackoff(retry)
					continue
				}
				return nil, err
			} else if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
				// Error response code handling
				// See official Retry guidance (https://learn.microsoft.com/en-us/azure/architecture/best-practices/retry-service-specific#retry-usage-guidance)
				if res.StatusCode == http.StatusTooManyRequests {
					retryAfterHeader := res.Header.Get("Retry-After")
					if retryAfter, err := strconv.ParseInt(retryAfterHeader, 10, 64); err != nil {
						return nil, fmt.Errorf("attempting to handle 429 but unable to parse retry-after header: %w", err)
					} else {
						// Wait the time indicated in the retry-after header
						time.Sleep(time.Second * time.Duration(retryAfter))
						continue
					}
				} else if res.StatusCode >= http.StatusInternalServerError {
					// Wait the time calculated by the 5 second exponential backoff
					ExponentialBackoff(retry)
					continue
				} else {
					// Not a status code that warrants a retry; keep the code
					// so callers can tell a missing object apart
					var errRes map[string]interface{}
					if err := Decode(res.Body, &errRes); err != nil {
						return nil, &StatusError{Code: res.StatusCode}
					} else {
						return nil, &StatusError{Code: res.StatusCode, Body: errRes}
					}
				}
			} else {
				// Response OK
				return res, nil
			}
		}
		return nil, fmt.Errorf("unable to complete the request after %d attempts: %w", maxRetries, err)
	}
}

func (s *restClient) CloseIdleConnections() {
	s.http.CloseIdleConnections()
}
