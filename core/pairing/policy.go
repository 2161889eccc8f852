// core/pairing/policy.go
package pairing

import "microseq-core/token"

// Policy resolves multiple files of the same orientation within one sample
// group.
type Policy string

const (
	PolicyError        Policy = "error"
	PolicyKeepFirst    Policy = "keep-first"
	PolicyKeepLast     Policy = "keep-last"
	PolicyMerge        Policy = "merge"
	PolicyKeepSeparate Policy = "keep-separate"
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyError, PolicyKeepFirst, PolicyKeepLast, PolicyMerge, PolicyKeepSeparate:
		return Policy(s), nil
	}
	return "", &token.ConfigError{Field: "duplicate policy", Value: s}
}
