// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

import "errors"

// Sentinel errors for runtime capability upgrades.
// Statically typed construction never returns them: a range that cannot be
// reversed is rejected by the compiler.
var (
	// ErrNotBidirectional indicates a range without decrement or equality.
	ErrNotBidirectional = errors.New("rangex: range is not bidirectional")

	// ErrNotRandomAccess indicates a range without distance or advance.
	ErrNotRandomAccess = errors.New("rangex: range is not random access")
)
