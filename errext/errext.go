/*
 *
 * hisview - a legacy .drr/.his histogram catalog viewer
 * Copyright (C) 2024 hisview contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package errext adds two small capabilities on top of plain Go errors: a
// user-facing hint appended to the message, and a process exit code. Both
// compose across fmt.Errorf("...: %w", err) wrapping via errors.As.
package errext

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/drr-tools/hisview/errext/exitcodes"
)

// HasHint is implemented by errors that carry a short, user-facing suggestion to
// append after the error text (e.g. "Run hisview --help for more information").
type HasHint interface {
	error
	Hint() string
}

// HasExitCode is implemented by errors that dictate which process exit code
// hisview should terminate with.
type HasExitCode interface {
	error
	ExitCode() exitcodes.ExitCode
}

// Exception is implemented by errors carrying a formatted stack trace or other
// long-form diagnostic text that should be shown instead of Error().
type Exception interface {
	error
	StackTrace() string
}

// AbortReason classifies why a run stopped, for errors that implement
// HasAbortReason. hisview's own pipeline never aborts mid-stream — once
// emission begins, errors are fatal — but the type is kept so an Exception
// surfaced through the taxonomy can still report one.
type AbortReason uint8

// HasAbortReason is implemented by errors reporting why execution was aborted.
type HasAbortReason interface {
	error
	AbortReason() AbortReason
}

type hintedError struct {
	cause error
	hint  string
}

func (e *hintedError) Error() string { return e.cause.Error() }
func (e *hintedError) Hint() string  { return e.hint }
func (e *hintedError) Unwrap() error { return e.cause }

// WithHint wraps err with a hint, merging it with any hint already carried
// deeper in the chain as "newHint (oldHint)". Returns nil if err is nil.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	var existing HasHint
	if errors.As(err, &existing) {
		hint = fmt.Sprintf("%s (%s)", hint, existing.Hint())
	}
	return &hintedError{cause: err, hint: hint}
}

type exitCodedError struct {
	cause error
	code  exitcodes.ExitCode
}

func (e *exitCodedError) Error() string                { return e.cause.Error() }
func (e *exitCodedError) ExitCode() exitcodes.ExitCode { return e.code }
func (e *exitCodedError) Unwrap() error                { return e.cause }

// WithExitCodeIfNone wraps err with code, unless err already carries an exit
// code somewhere in its chain, in which case err is returned unchanged so the
// most specific exit code set closest to the failure wins. Returns nil if err
// is nil.
func WithExitCodeIfNone(err error, code exitcodes.ExitCode) error {
	if err == nil {
		return nil
	}
	var existing HasExitCode
	if errors.As(err, &existing) {
		return err
	}
	return &exitCodedError{cause: err, code: code}
}

// Format renders err as display text (using an Exception's StackTrace instead
// of Error() when present) plus any structured fields (currently just "hint")
// found in the chain.
func Format(err error) (string, map[string]interface{}) {
	if err == nil {
		return "", nil
	}

	text := err.Error()
	var exc Exception
	if errors.As(err, &exc) {
		text = exc.StackTrace()
	}

	var fields map[string]interface{}
	var h HasHint
	if errors.As(err, &h) {
		fields = map[string]interface{}{"hint": h.Hint()}
	}
	return text, fields
}

// Fprint logs err at error level through logger, using Format to expand it.
// A nil err logs nothing.
func Fprint(logger logrus.FieldLogger, err error) {
	if err == nil {
		return
	}
	text, fields := Format(err)
	logger.WithFields(logrus.Fields(fields)).Error(text)
}
