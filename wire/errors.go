// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "errors"

// errInvalidElement is returned when readElement/writeElement is asked to
// handle a type it doesn't know the wire layout for.
var errInvalidElement = errors.New("wire: unsupported element type")
