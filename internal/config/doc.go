// Package config provides repository-scoped configuration for repoman,
// stored as a JSON file under the repository's .git directory.
package config
