// Package integration holds code generated from api.yml and strict.yml.
// The tests of the generated packages check the runtime behaviour of
// builders, enums and codecs; strict.yml is generated with unknown fields
// rejected.
package integration

//go:generate go run github.com/syssam/conjen/cmd/conjen generate --out . --package github.com/syssam/conjen/internal/integration --non-null-collections --features msgpack api.yml
//go:generate go run github.com/syssam/conjen/cmd/conjen generate --out . --package github.com/syssam/conjen/internal/integration --strict-objects --features msgpack strict.yml
