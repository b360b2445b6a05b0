// seehuhn.de/go/mnistpad - hand-drawn digits in MNIST format
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mnistpad

import "errors"

var (
	// ErrInvalidScale is returned for export scales other than 1, 2, 4 and 8.
	ErrInvalidScale = errors.New("invalid export scale")

	// ErrEmptyCanvas is returned when an export is requested before
	// anything has been drawn.
	ErrEmptyCanvas = errors.New("nothing drawn")

	// ErrMalformedDataURI is returned by Decode for input which is not a
	// base64 PNG data URI.
	ErrMalformedDataURI = errors.New("malformed PNG data URI")

	// ErrInvalidConfig is returned for out-of-range configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)
