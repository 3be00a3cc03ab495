// Package model holds the request, result and nested structures of the
// Amazon Comprehend API together with their enumerations.
//
// Every structure follows the same conventions. Scalar members are pointers
// so that an absent member is distinguishable from its zero value; enum
// members are plain string types where the empty string means absent and
// values unknown to this client are preserved as received. Lists are plain
// slices where nil means absent and an empty slice means present but empty.
//
// Each member has a getter that is safe on a nil receiver, a chainable
// setter, and for lists an appender. List setters copy their argument.
// Structures support String, Equal and Hash, and request structures can be
// checked against the documented constraints with Validate.
//
// The sources in this package, apart from this file, are generated from
// internal/schema/comprehend.yaml.
package model

//go:generate go run ../cmd/shapegen -out ..
