// Package domain contains the core domain model for unitconv.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// terminal UI, or the filesystem. Infra/adapters map into/from these types.
package domain
