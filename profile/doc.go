// Package profile wraps [github.com/pkg/profile] behind the build tag
// named by [Tag].
//
// Without the tag, every operation is a no-op, so callers can wire
// profiling unconditionally:
//
//	defer profile.New(profile.WithMode(mode)).Start().Stop()
package profile
