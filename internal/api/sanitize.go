package api

import "github.com/microcosm-cc/bluemonday"

// strictPolicy strips every HTML element and attribute. Input is
// considered unsanitary whenever stripping changes it, mirroring the
// check applied to emails and profile text alike.
var strictPolicy = bluemonday.StrictPolicy()

// sanitary reports whether the string survives strict HTML
// sanitization unchanged.
func sanitary(s string) bool {
	return strictPolicy.Sanitize(s) == s
}
