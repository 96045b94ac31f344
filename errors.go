/*
 * errors.go, part of goptm.
 *
 * Copyright 2025 Raul Mera rauldotmeraatusachdotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ptm

import (
	"errors"
	"fmt"
)

//Kind classifies the failures of the modification engine.
type Kind int

const (
	NotFound Kind = iota + 1 //a chain, residue, rule or template does not exist
	OutOfRange               //a positional index falls outside the library
	MissingAtom              //an anchor, mapped or template atom is absent
	Mapping                  //inconsistent atom pairing between rule and structure
	Schema                   //malformed rule library or template data
	Resource                 //a file or external program could not be used
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case OutOfRange:
		return "out of range"
	case MissingAtom:
		return "missing atom"
	case Mapping:
		return "mapping"
	case Schema:
		return "schema"
	case Resource:
		return "resource"
	}
	return "unknown"
}

//Error is the error type used across goptm. It carries a Kind and a
//decoration trail of the callers it has passed through.
type Error struct {
	kind    Kind
	message string
	deco    []string
}

//NewError returns an Error of the given kind, decorated with caller.
func NewError(kind Kind, caller, message string) *Error {
	return &Error{kind: kind, message: message, deco: []string{caller}}
}

func (e *Error) Error() string {
	return fmt.Sprintf("goptm %s error: %s", e.kind, e.message)
}

//Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

//Decorate appends dec to the decoration trail and returns the trail.
//An empty dec inspects the trail without growing it.
func (e *Error) Decorate(dec string) []string {
	if dec != "" {
		e.deco = append(e.deco, dec)
	}
	return e.deco
}

//Is reports whether err is, or wraps, an Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}

//errDecorate adds the caller to the trail of goptm errors, and wraps
//everything else into a Resource-kind Error.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return NewError(Resource, caller, err.Error())
}
