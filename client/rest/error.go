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
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the API answers with a non-retryable error
// status. It preserves the status code so callers can tell a missing object
// apart from other failures.
type StatusError struct {
	Code int
	Body map[string]interface{}
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %v", s.Code, s.Body)
}

// IsNotFoundErr reports whether err represents a 404 response.
func IsNotFoundErr(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
