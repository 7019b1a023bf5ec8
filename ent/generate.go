// Package ent holds the generated Ent client. Run `go generate ./ent` after
// changing any schema; generated code is not committed.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock,sql/upsert ./schema
