// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rangex

// Contract checks.
// Index preconditions are verified only in builds tagged rangexdebug;
// otherwise violating them is undefined behavior. A dispatch that needs a
// capability the range lacks always panics.

// contractViolation panics for a broken precondition of op.
//
//go:noinline
func contractViolation(op string) {
	panic("rangex: precondition violated in " + op)
}

// missingCapability panics when a dispatcher requires an operation the range
// does not define.
//
//go:noinline
func missingCapability(op string, c Capability) {
	panic("rangex: " + op + " requires " + c.String())
}

// precondition checks ok when debug checks are compiled in.
func precondition(ok bool, op string) {
	if debugChecks && !ok {
		contractViolation(op)
	}
}
