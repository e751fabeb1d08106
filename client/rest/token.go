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
	"encoding/json"
	"time"
)

// Token holds an OAuth2 access token and its expiry.
type Token struct {
	jwt       string
	expires   time.Time
	tokenType string
}

func (s Token) String() string {
	return s.jwt
}

func (s Token) Type() string {
	if s.tokenType == "" {
		return "Bearer"
	}
	return s.tokenType
}

// IsExpired reports whether the token is within a minute of expiring;
// the margin avoids failing requests that race the expiry.
func (s Token) IsExpired() bool {
	return time.Now().After(s.expires.Add(-1 * time.Minute))
}

func (s *Token) UnmarshalJSON(data []byte) error {
	var res struct {
		AccessToken string         `json:"access_token"`
		ExpiresIn   IntOrStringInt `json:"expires_in"`
		TokenType   string         `json:"token_type"`
	}

	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}

	s.jwt = res.AccessToken
	s.tokenType = res.TokenType
	s.expires = time.Now().Add(time.Duration(res.ExpiresIn) * time.Second)
	return nil
}

// StaticToken wraps a pre-acquired access token, trusting the exp claim when
// it parses and otherwise assuming an hour of validity.
func StaticToken(accessToken string) Token {
	expires := time.Now().Add(1 * time.Hour)
	if body, err := ParseBody(accessToken); err == nil {
		if exp, ok := body["exp"].(float64); ok {
			expires = time.Unix(int64(exp), 0)
		}
	}
	return Token{jwt: accessToken, expires: expires}
}
