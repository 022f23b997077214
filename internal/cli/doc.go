// Package cli implements the cobra commands for repoman.
//
// Each subcommand is a thin front end: it gathers input (arguments, flags,
// or interactive prompts), delegates to the actions package and displays the
// Result. The interactive menu lives here too.
package cli
