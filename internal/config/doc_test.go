package config_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExportedTypesDocumented keeps every config section visible in go doc.
func TestExportedTypesDocumented(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "config.go", nil, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if !ts.Name.IsExported() {
				continue
			}
			doc := ts.Doc
			if doc == nil {
				doc = gen.Doc
			}
			if assert.NotNil(t, doc, "type %s has no doc comment", ts.Name.Name) {
				assert.True(t, strings.HasPrefix(doc.Text(), ts.Name.Name+" "), "doc of %s should start with its name", ts.Name.Name)
			}
		}
	}
}
