package adapter

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ErrParseFailed is returned when the parser produces no tree at all.
var ErrParseFailed = errors.New("typescript parse failed")

// SyntaxChecker reports whether source text contains syntax errors.
type SyntaxChecker interface {
	HasErrors(src []byte) (bool, error)
}

// TypeScriptChecker parses sources with the tree-sitter TypeScript grammar.
// A fresh parser is created per call so the checker is safe for concurrent
// use.
type TypeScriptChecker struct {
	language *sitter.Language
}

// NewTypeScriptChecker constructs a TypeScriptChecker.
func NewTypeScriptChecker() *TypeScriptChecker {
	return &TypeScriptChecker{language: sitter.NewLanguage(typescript.LanguageTypescript())}
}

// HasErrors parses src and reports whether the tree contains error nodes.
func (c *TypeScriptChecker) HasErrors(src []byte) (bool, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(c.language); err != nil {
		return false, fmt.Errorf("set typescript language: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return false, ErrParseFailed
	}
	defer tree.Close()

	return tree.RootNode().HasError(), nil
}
