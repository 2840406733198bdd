// Package catalog loads the ordered item list a simulation starts from.
//
// Catalogs are YAML or CUE files with a single top-level "items" list:
//
//	items:
//	  - name: Aged Brie
//	    sell_in: 2
//	    quality: 0
//
// Both formats are checked against the embedded CUE schema (schema.cue)
// before any item is built. Item names are NFC-normalized so that
// decomposed Unicode from editors still matches the special names exactly.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gildedrose/internal/inventory"
)

//go:embed schema.cue
var schemaCUE string

// Error codes for catalog loading.
const (
	ErrCodeNotFound    = "E101" // Catalog file missing or unreadable
	ErrCodeFormat      = "E102" // Unsupported file extension
	ErrCodeParse       = "E103" // YAML or CUE syntax error
	ErrCodeSchema      = "E104" // Catalog does not match schema.cue
	ErrCodeSchemaBuild = "E105" // Embedded schema failed to compile
)

// Catalog is an ordered list of items plus where it came from.
type Catalog struct {
	Source string
	Items  []inventory.Item
}

// LoadError describes why a catalog could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Line    int
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", e.Path, e.Line, e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// document is the on-disk shape shared by YAML and CUE catalogs.
type document struct {
	Items []entry `json:"items" yaml:"items"`
}

type entry struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`
}

// Load reads a catalog file, picking the decoder from its extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: err.Error(), Path: path}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	case ".cue":
		return ParseCUE(path, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported catalog format %q (want .yaml, .yml or .cue)", ext),
			Path:    path,
		}
	}
}

// ParseYAML decodes a YAML catalog. Unknown fields are rejected.
func ParseYAML(source string, data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parse YAML: %v", err), Path: source}
	}

	ctx := cuecontext.New()
	if doc.Items == nil {
		doc.Items = []entry{}
	}
	if err := checkSchema(ctx, source, ctx.Encode(doc)); err != nil {
		return nil, err
	}
	return build(source, doc), nil
}

// ParseCUE compiles a CUE catalog and unifies it with the schema.
func ParseCUE(source string, data []byte) (*Catalog, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(source))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParse, source, "compile CUE", err)
	}

	if err := checkSchema(ctx, source, value); err != nil {
		return nil, err
	}

	var doc document
	if err := value.Decode(&doc); err != nil {
		return nil, cueLoadError(ErrCodeSchema, source, "decode catalog", err)
	}
	return build(source, doc), nil
}

// checkSchema unifies value with #Catalog and requires a concrete result.
func checkSchema(ctx *cue.Context, source string, value cue.Value) error {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return cueLoadError(ErrCodeSchemaBuild, "schema.cue", "compile schema", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cueLoadError(ErrCodeSchema, source, "catalog does not match schema", err)
	}
	return nil
}

func build(source string, doc document) *Catalog {
	items := make([]inventory.Item, len(doc.Items))
	for i, e := range doc.Items {
		items[i] = inventory.NewItem(norm.NFC.String(e.Name), e.SellIn, e.Quality)
	}
	return &Catalog{Source: source, Items: items}
}

// cueLoadError keeps the first CUE position so the CLI can point at a line.
func cueLoadError(code, source, msg string, err error) *LoadError {
	le := &LoadError{Code: code, Message: fmt.Sprintf("%s: %v", msg, err), Path: source}
	for _, e := range cueerrors.Errors(err) {
		if pos := e.Position(); pos.IsValid() {
			le.Line = pos.Line()
			break
		}
	}
	return le
}
