package license

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	repomanerrors "repoman.dev/repoman/internal/errors"
)

//go:embed templates/*.txt
var builtinTemplates embed.FS

// Entry is one license record in the merged catalog.
type Entry struct {
	// ID is the unique identifier within the merged catalog (e.g. "MIT").
	ID string
	// Name is the human-readable display name.
	Name string
	// SPDX is the SPDX-style short name, when one exists.
	SPDX string
	// Body is the template text containing {year} and {name} placeholders.
	Body string
	// RequiresAuthor marks templates whose author placeholder is mandatory.
	RequiresAuthor bool
}

// builtinSpecs pins the embedded catalog: id, display name, SPDX short name
// and template file. All built-in templates require an author.
var builtinSpecs = []struct {
	id   string
	name string
	spdx string
	file string
}{
	{"MIT", "MIT License", "MIT", "mit.txt"},
	{"Apache-1.1", "Apache License 1.1", "Apache-1.1", "apache-1.1.txt"},
	{"Apache-2.0", "Apache License 2.0", "Apache-2.0", "apache-2.0.txt"},
	{"BSD-2-Clause", "BSD 2-Clause License", "BSD-2-Clause", "bsd-2-clause.txt"},
	{"BSD-3-Clause", "BSD 3-Clause License", "BSD-3-Clause", "bsd-3-clause.txt"},
	{"BSD-4-Clause", "BSD 4-Clause License", "BSD-4-Clause", "bsd-4-clause.txt"},
}

// placeholderPattern matches {token} placeholders in a template body.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// Catalog is the merged, immutable set of license entries. It is read-only
// after Load, so concurrent lookups need no synchronization.
type Catalog struct {
	entries map[string]Entry // keyed by lower-cased id
	order   []string         // display order of canonical ids
}

// externalEntry is the wire form of one entry in an external catalog file,
// matching the licenses.json layout: a mapping of id to entry fields.
type externalEntry struct {
	Name         string `json:"name"`
	Text         string `json:"text"`
	SPDX         string `json:"spdx,omitempty"`
	RequiresName *bool  `json:"requires_name,omitempty"`
}

// LoadBuiltin returns a catalog holding only the embedded entries.
func LoadBuiltin() *Catalog {
	catalog := &Catalog{entries: make(map[string]Entry)}
	for _, spec := range builtinSpecs {
		body, err := builtinTemplates.ReadFile(path.Join("templates", spec.file))
		if err != nil {
			// Embedded files are fixed at build time; a miss is a programming error.
			panic(fmt.Sprintf("missing embedded license template %s: %v", spec.file, err))
		}
		catalog.put(Entry{
			ID:             spec.id,
			Name:           spec.name,
			SPDX:           spec.spdx,
			Body:           string(body),
			RequiresAuthor: true,
		})
	}
	return catalog
}

// Load builds the merged catalog: built-ins plus the optional external file
// at externalPath. External entries with a known id replace the built-in
// entry wholesale (display name and metadata included); unknown ids are
// added. Invalid entries are skipped and reported in warnings without
// aborting the load. A file that is present but unparseable as a whole is
// reported through the returned error while the built-in catalog is still
// returned as a usable fallback.
func Load(externalPath string) (*Catalog, []error, error) {
	catalog := LoadBuiltin()

	if externalPath == "" {
		return catalog, nil, nil
	}
	data, err := os.ReadFile(externalPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Absence is not an error; built-ins carry the catalog.
			return catalog, nil, nil
		}
		return catalog, nil, repomanerrors.NewCatalogLoadError(externalPath, err)
	}

	// External catalogs may carry comments and trailing commas.
	var raw map[string]externalEntry
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return catalog, nil, repomanerrors.NewCatalogLoadError(externalPath, err)
	}

	var warnings []error
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry, err := buildEntry(id, raw[id])
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		catalog.put(entry)
	}

	return catalog, warnings, nil
}

// buildEntry validates one external entry and converts it to an Entry.
func buildEntry(id string, raw externalEntry) (Entry, error) {
	if strings.TrimSpace(id) == "" {
		return Entry{}, repomanerrors.NewCatalogEntryError(id, "identifier is empty")
	}
	if strings.TrimSpace(raw.Text) == "" {
		return Entry{}, repomanerrors.NewCatalogEntryError(id, "body template is empty")
	}
	for _, match := range placeholderPattern.FindAllStringSubmatch(raw.Text, -1) {
		if match[1] != "year" && match[1] != "name" {
			return Entry{}, repomanerrors.NewCatalogEntryError(id,
				fmt.Sprintf("unrecognized placeholder {%s}", match[1]))
		}
	}

	name := raw.Name
	if name == "" {
		name = id
	}
	requiresAuthor := true
	if raw.RequiresName != nil {
		requiresAuthor = *raw.RequiresName
	}

	return Entry{
		ID:             id,
		Name:           name,
		SPDX:           raw.SPDX,
		Body:           raw.Text,
		RequiresAuthor: requiresAuthor,
	}, nil
}

// put inserts or replaces an entry, preserving first-seen display order.
func (c *Catalog) put(entry Entry) {
	key := strings.ToLower(entry.ID)
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, entry.ID)
	}
	c.entries[key] = entry
}

// Lookup returns the entry for the given identifier. Matching is
// case-insensitive; a miss is a LicenseNotFound failure, never a default.
func (c *Catalog) Lookup(id string) (Entry, error) {
	entry, ok := c.entries[strings.ToLower(id)]
	if !ok {
		return Entry{}, repomanerrors.NewLicenseNotFoundError(id)
	}
	return entry, nil
}

// Entries returns all entries in display order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, c.entries[strings.ToLower(id)])
	}
	return entries
}

// IDs returns all identifiers in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Len returns the number of entries in the merged catalog.
func (c *Catalog) Len() int { return len(c.entries) }
