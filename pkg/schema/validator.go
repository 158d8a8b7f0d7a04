/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package schema validates Redfish resources against JSON schemas.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const schemaExt = ".json"

//go:embed schemas/*.json
var embedded embed.FS

// ErrSchemaNotFound is returned when no schema is registered under a name.
var ErrSchemaNotFound = errors.New("schema not found")

// Interface validates a resource against a named schema.
type Interface interface {
	Validate(resource any, schemaName string) error
}

// ValidationError lists every violation reported for a resource.
type ValidationError struct {
	Schema  string
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resource does not conform to schema %s: %s", e.Schema, strings.Join(e.Details, "; "))
}

// Validator holds compiled schemas keyed by name. It is read-only after
// construction and safe for concurrent use.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

var _ Interface = (*Validator)(nil)

// New compiles the embedded schemas and, when dir is not empty, every
// *.json file in dir. Files in dir replace embedded schemas of the same name.
func New(dir string) (*Validator, error) {
	sub, err := fs.Sub(embedded, "schemas")
	if err != nil {
		return nil, err
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}

	if err := v.load(sub); err != nil {
		return nil, err
	}

	if dir != "" {
		if err := v.load(os.DirFS(dir)); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// NewFromFS compiles every *.json file at the root of fsys.
func NewFromFS(fsys fs.FS) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}

	if err := v.load(fsys); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Validator) load(fsys fs.FS) error {
	files, err := fs.Glob(fsys, "*"+schemaExt)
	if err != nil {
		return fmt.Errorf("list schemas: %w", err)
	}

	for _, file := range files {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("read schema %s: %w", file, err)
		}

		compiled, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return fmt.Errorf("compile schema %s: %w", file, err)
		}

		v.schemas[strings.TrimSuffix(path.Base(file), schemaExt)] = compiled
	}

	return nil
}

// Names returns the registered schema names in sorted order.
func (v *Validator) Names() []string {
	names := make([]string, 0, len(v.schemas))
	for name := range v.schemas {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Validate checks resource against the schema registered as schemaName.
func (v *Validator) Validate(resource any, schemaName string) error {
	compiled, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSchemaNotFound, schemaName)
	}

	result, err := compiled.Validate(gojsonschema.NewGoLoader(resource))
	if err != nil {
		return fmt.Errorf("validate %s: %w", schemaName, err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}

	return &ValidationError{Schema: schemaName, Details: details}
}
