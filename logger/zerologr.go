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

package logger

import (
	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

// zerologSink adapts a zerolog.Logger to the logr.LogSink interface.
// V(0) maps to the info level, higher verbosity to debug.
type zerologSink struct {
	logger    *zerolog.Logger
	name      string
	verbosity int
	values    []interface{}
}

func (s *zerologSink) Init(info logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	return level <= s.verbosity
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	var event *zerolog.Event
	if level > 0 {
		event = s.logger.Debug()
	} else {
		event = s.logger.Info()
	}
	s.write(event, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	sink := *s
	sink.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return &sink
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	sink := *s
	if sink.name != "" {
		sink.name += "/"
	}
	sink.name += name
	return &sink
}

func (s *zerologSink) write(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	if len(s.values) > 0 {
		event = event.Fields(s.values)
	}
	if len(keysAndValues) > 0 {
		event = event.Fields(keysAndValues)
	}
	event.Msg(msg)
}
