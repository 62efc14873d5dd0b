// Package types holds the close-approach and near-earth object records shared
// by the readers, writers and CLI.
package types
