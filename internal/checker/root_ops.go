package checker

import (
	"fmt"

	tsxerrors "github.com/tsxcheck/tsxcheck/internal/errors"
)

// contextFileHeader is the reserved byte header for a serialized root
// context (spec.md §4.4, §6). Serialize/Deserialize are unimplemented
// stubs — see the Open Question decision in DESIGN.md — so the header
// is never actually written; it is kept here so a future
// implementation has the exact reserved bytes to hand.
var contextFileHeader = []byte("EZNO\x00CONTEXT\x00FILE")

// Union merges other into root. Spec.md §4.4 and §9 both flag this as
// explicitly unsound for overlapping bindings with no resolution
// policy specified; per the Open Question decision in DESIGN.md this
// stays a stub rather than inventing a merge policy, mirroring
// root.rs's own todo!().
func (root *Context) Union(other *Context) error {
	return tsxerrors.WrapReport(tsxerrors.New("checker", tsxerrors.CHK003,
		"Union is unsound for overlapping bindings and has no defined merge policy"))
}

// Serialize is not implemented (spec.md §4.4: "Serialize/deserialize
// are not implemented; callers must treat them as failing
// operations"). The commented draft in root.rs references fields
// (proofs, subtyping_constant_proofs, terms_reverse, proxies) not
// present on this Context shape — inventing a binary format for them
// would be guessing, not grounding.
func (root *Context) Serialize() ([]byte, error) {
	return nil, tsxerrors.WrapReport(tsxerrors.New("checker", tsxerrors.CHK003,
		fmt.Sprintf("Serialize is not implemented (header reserved: %q)", contextFileHeader)))
}

// Deserialize is not implemented; see Serialize.
func Deserialize(data []byte) (*Context, error) {
	return nil, tsxerrors.WrapReport(tsxerrors.New("checker", tsxerrors.CHK003,
		"Deserialize is not implemented"))
}
