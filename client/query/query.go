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

package query

import "strconv"

type Params interface {
	AsMap() map[string]string
	NeedsEventualConsistencyHeaderFlag() bool
}

// GraphParams describes the OData query options supported by the Microsoft
// Graph endpoints this tool calls.
type GraphParams struct {
	Count  bool
	Expand string
	Filter string
	Search string
	Select []string
	Top    int
}

func (s GraphParams) AsMap() map[string]string {
	params := make(map[string]string)

	if s.Count {
		params["$count"] = "true"
	}

	if s.Expand != "" {
		params["$expand"] = s.Expand
	}

	if s.Filter != "" {
		params["$filter"] = s.Filter
	}

	if s.Search != "" {
		params["$search"] = s.Search
	}

	if len(s.Select) > 0 {
		selectParam := ""
		for i, item := range s.Select {
			if i > 0 {
				selectParam += ","
			}
			selectParam += item
		}
		params["$select"] = selectParam
	}

	if s.Top > 0 {
		params["$top"] = strconv.Itoa(s.Top)
	}

	return params
}

// NeedsEventualConsistencyHeaderFlag reports whether the request must carry
// the ConsistencyLevel header for Graph advanced query support.
func (s GraphParams) NeedsEventualConsistencyHeaderFlag() bool {
	return s.Count || s.Search != ""
}
