package appsync

import (
	"embed"
	"fmt"
	"io"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.yaml.in/yaml/v3"
)

//go:embed operations/operations.yml
var operationsFS embed.FS

// Operation is a parsed GraphQL document with a single named operation.
type Operation struct {
	Name      string
	Kind      ast.Operation
	RootField string
	Document  string
}

// Catalogue holds the GraphQL operations the client is allowed to send.
type Catalogue struct {
	operations map[string]Operation
}

type operationEntry struct {
	Name     string `yaml:"name"`
	Document string `yaml:"document"`
}

// DefaultCatalogue loads the embedded content generation operations.
func DefaultCatalogue() (Catalogue, error) {
	file, err := operationsFS.Open("operations/operations.yml")
	if err != nil {
		return Catalogue{}, fmt.Errorf("failed to open operations: %w", err)
	}
	defer file.Close() //nolint:errcheck

	return LoadCatalogue(file)
}

// LoadCatalogue decodes a YAML list of named documents and parses each of them.
func LoadCatalogue(r io.Reader) (Catalogue, error) {
	entries := []operationEntry{}
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return Catalogue{}, fmt.Errorf("failed to decode operations: %w", err)
	}

	c := Catalogue{operations: make(map[string]Operation, len(entries))}
	for _, e := range entries {
		op, err := parseOperation(e)
		if err != nil {
			return Catalogue{}, err
		}
		if _, exists := c.operations[op.Name]; exists {
			return Catalogue{}, fmt.Errorf("operation %s is declared more than once", op.Name)
		}
		c.operations[op.Name] = op
	}
	return c, nil
}

// Lookup returns the operation registered under name.
func (c Catalogue) Lookup(name string) (Operation, error) {
	op, ok := c.operations[name]
	if !ok {
		return Operation{}, fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

func parseOperation(e operationEntry) (Operation, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: e.Name, Input: e.Document})
	if err != nil {
		return Operation{}, fmt.Errorf("failed to parse operation %s: %w", e.Name, err)
	}
	if len(doc.Operations) != 1 {
		return Operation{}, fmt.Errorf("operation %s must declare exactly one operation, got %d", e.Name, len(doc.Operations))
	}

	def := doc.Operations[0]
	if def.Name != e.Name {
		return Operation{}, fmt.Errorf("operation %s declares %q", e.Name, def.Name)
	}
	if len(def.SelectionSet) != 1 {
		return Operation{}, fmt.Errorf("operation %s must select exactly one root field", e.Name)
	}
	field, ok := def.SelectionSet[0].(*ast.Field)
	if !ok {
		return Operation{}, fmt.Errorf("operation %s must select a field at the root", e.Name)
	}

	return Operation{
		Name:      def.Name,
		Kind:      def.Operation,
		RootField: field.Alias,
		Document:  e.Document,
	}, nil
}
