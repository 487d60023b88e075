// Package repo is the ent client generated from internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/upsert --target . ../schema
