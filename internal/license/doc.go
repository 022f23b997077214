// Package license provides the license template catalog and renderer.
//
// Built-in templates are embedded in the binary; an optional external
// catalog file can override or extend them. Rendering is a pure placeholder
// substitution over the merged catalog, so identical inputs always produce
// identical license text.
package license
