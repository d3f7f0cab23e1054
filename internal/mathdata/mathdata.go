// Package mathdata loads reference tables of function inputs and expected outputs.
//
// A table is a YAML document validated against an embedded JSON schema:
//
//	name: log
//	function: log
//	precision: float64
//	ulp: 1
//	cases:
//	  - in: ["0x1.5bf0a8b145769p+1"]
//	    out: "1"
//	  - {fn: exp, in: ["1"], out: "0x1.5bf0a8b145769p+1"}
//
// The function of a case defaults to the function of its table.
// Values are strings, so that hex floats, signed zeros, infinities and NaNs
// are written exactly. Extended precision values are kept as text.
package mathdata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

// ErrNoFunction is returned for a case without a function in a table without a default one.
var ErrNoFunction = errors.New("no function")

// Precision is the floating-point format of a table.
type Precision string

const (
	Float32 Precision = "float32"
	Float64 Precision = "float64"
	Float80 Precision = "float80"
)

// Case is a single function evaluation.
type Case struct {
	Fn string `json:"fn,omitempty"`
	// In and Out are the textual arguments and result.
	In  []string `json:"in"`
	Out string   `json:"out"`
	// Int is the optional integer side result: an exponent, quotient bits or a sign.
	Int *int `json:"int,omitempty"`

	// Args and Want are parsed from In and Out for float32 and float64 tables.
	Args []float64 `json:"-"`
	Want float64   `json:"-"`
}

// Table is a set of cases for one function in one precision.
type Table struct {
	Name      string    `json:"name"`
	Function  string    `json:"function,omitempty"`
	Precision Precision `json:"precision"`
	// ULP is the allowed distance of a result from Out in units in the last place.
	ULP   float64 `json:"ulp"`
	Cases []Case  `json:"cases"`
}

//go:embed table.schema.json
var schemaData []byte

const schemaURL = "table.schema.json"

var (
	tableSchema *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		tableSchema, err = compiler.Compile(schemaURL)
		if err != nil {
			compileErr = fmt.Errorf("compile schema: %w", err)
		}
	})
	return compileErr
}

// Parse decodes and validates a YAML table.
// Schema violations are returned as a wrapped *jsonschema.ValidationError.
func Parse(data []byte) (*Table, error) {
	if err := compileSchema(); err != nil {
		return nil, err
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return nil, fmt.Errorf("unmarshal table: %w", err)
	}
	if err := tableSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate table: %w", err)
	}
	var t Table
	if err := json.Unmarshal(js, &t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	for i := range t.Cases {
		c := &t.Cases[i]
		if c.Fn == "" {
			c.Fn = t.Function
		}
		if c.Fn == "" {
			return nil, fmt.Errorf("table %q: case %d: %w", t.Name, i, ErrNoFunction)
		}
	}
	if err := t.parseValues(); err != nil {
		return nil, fmt.Errorf("table %q: %w", t.Name, err)
	}
	return &t, nil
}

func (t *Table) parseValues() error {
	var bitSize int
	switch t.Precision {
	case Float32:
		bitSize = 32
	case Float64:
		bitSize = 64
	default:
		return nil
	}
	for i := range t.Cases {
		c := &t.Cases[i]
		c.Args = make([]float64, len(c.In))
		for j, s := range c.In {
			v, err := strconv.ParseFloat(s, bitSize)
			if err != nil {
				return fmt.Errorf("case %d: arg %d: %w", i, j, err)
			}
			c.Args[j] = v
		}
		v, err := strconv.ParseFloat(c.Out, bitSize)
		if err != nil {
			return fmt.Errorf("case %d: result: %w", i, err)
		}
		c.Want = v
	}
	return nil
}

// Load reads and parses a table from fsys.
func Load(fsys fs.FS, name string) (*Table, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// LoadAll loads all tables matching pattern concurrently.
// The tables are returned in the order of fs.Glob.
func LoadAll(fsys fs.FS, pattern string) ([]*Table, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	tables := make([]*Table, len(names))
	var g errgroup.Group
	g.SetLimit(4)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			t, err := Load(fsys, name)
			tables[i] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Select returns the tables of precision p.
func Select(tables []*Table, p Precision) []*Table {
	var res []*Table
	for _, t := range tables {
		if t.Precision == p {
			res = append(res, t)
		}
	}
	return res
}
