// SPDX-License-Identifier: MIT

// Package document decodes the operand documents accepted by the linalg CLI.
//
// A document names up to three operands:
//
//	matrix: [[8, 5, -2], [4, 7, 20], [7, 6, 1]]
//	other:  [[1, 0, 0], [0, 1, 0], [0, 0, 1]]
//	vector: [1, 2, 3]
//
// JSON is valid YAML flow syntax, so the same decoder reads both.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/matrix"
)

// Stdin is the path that selects standard input in Load.
const Stdin = "-"

var (
	// ErrEmptyDocument is returned when the input holds no YAML document at all.
	ErrEmptyDocument = errors.New("document: empty input")

	// ErrMissingOperand is returned when a command asks for an operand the
	// document does not define.
	ErrMissingOperand = errors.New("document: missing operand")
)

// Document is the decoded form of an operand file.
type Document struct {
	Matrix [][]float64 `yaml:"matrix"`
	Other  [][]float64 `yaml:"other"`
	Vector []float64   `yaml:"vector"`
}

// Decode reads a single document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("document: decode: %w", err)
	}

	return &doc, nil
}

// Load decodes the document at path; Stdin reads from stdin instead.
func Load(path string, stdin io.Reader) (*Document, error) {
	if path == Stdin {
		return Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// ParseMatrix decodes an inline flow literal such as "[[1, 2], [3, 4]]".
func ParseMatrix(literal string) ([][]float64, error) {
	var rows [][]float64
	if err := yaml.Unmarshal([]byte(literal), &rows); err != nil {
		return nil, fmt.Errorf("document: matrix literal %q: %w", literal, err)
	}

	return rows, nil
}

// ParseVector decodes an inline flow literal such as "[1, 2, 3]".
func ParseVector(literal string) ([]float64, error) {
	var values []float64
	if err := yaml.Unmarshal([]byte(literal), &values); err != nil {
		return nil, fmt.Errorf("document: vector literal %q: %w", literal, err)
	}

	return values, nil
}

// MatrixOperand builds the "matrix" operand, rejecting jagged rows.
func (d *Document) MatrixOperand() (*matrix.Matrix[float64], error) {
	return buildMatrix("matrix", d.Matrix)
}

// OtherOperand builds the "other" operand, rejecting jagged rows.
func (d *Document) OtherOperand() (*matrix.Matrix[float64], error) {
	return buildMatrix("other", d.Other)
}

// VectorOperand builds the "vector" operand.
func (d *Document) VectorOperand() (*matrix.Vector[float64], error) {
	if d.Vector == nil {
		return nil, fmt.Errorf("%w: vector", ErrMissingOperand)
	}

	return matrix.VectorFrom(d.Vector), nil
}

func buildMatrix(name string, rows [][]float64) (*matrix.Matrix[float64], error) {
	if rows == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingOperand, name)
	}
	m, err := matrix.MatrixFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("document: %s: %w", name, err)
	}

	return m, nil
}
