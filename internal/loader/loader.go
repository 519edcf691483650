// Package loader reads fitting-output declarations from YAML. A declaration
// file lists the raw variables a fitting network computes; the loader turns
// it into a FittingOutputDef ready for model-schema derivation.
//
// Example file:
//
//	fitting:
//	  - name: energy
//	    shape: [1]
//	    reducible: true
//	    r_differentiable: true
//	    c_differentiable: true
package loader

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/deepforce-ml/deepforce/internal/outputdef"
	"github.com/deepforce-ml/deepforce/internal/tensor"
)

type varDecl struct {
	Name            string `yaml:"name"`
	Shape           []int  `yaml:"shape"`
	Reducible       bool   `yaml:"reducible"`
	RDifferentiable bool   `yaml:"r_differentiable"`
	CDifferentiable bool   `yaml:"c_differentiable"`
	Atomic          *bool  `yaml:"atomic"` // default true
	Hessian         bool   `yaml:"hessian"`
	Magnetic        bool   `yaml:"magnetic"`
	Intensive       bool   `yaml:"intensive"`
}

type declFile struct {
	Fitting []varDecl `yaml:"fitting"`
}

// Loader parses declaration files.
type Loader struct {
	log *zap.Logger
}

// New creates a Loader. A nil logger disables logging.
func New(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// LoadFile reads and parses a declaration file.
func (l *Loader) LoadFile(path string) (*outputdef.FittingOutputDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading declaration file: %w", err)
	}
	def, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	l.log.Info("loaded output declaration",
		zap.String("path", path),
		zap.Int("variables", def.Len()))
	return def, nil
}

// Parse decodes a declaration document. Unknown fields are rejected.
func (l *Loader) Parse(data []byte) (*outputdef.FittingOutputDef, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var file declFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if len(file.Fitting) == 0 {
		return nil, fmt.Errorf("declaration has no fitting variables")
	}
	vars := make([]*outputdef.VarDef, 0, len(file.Fitting))
	for _, d := range file.Fitting {
		if d.Name == "" {
			return nil, fmt.Errorf("declaration with empty name")
		}
		atomic := true
		if d.Atomic != nil {
			atomic = *d.Atomic
		}
		v, err := outputdef.NewVarDef(d.Name, tensor.Shape(d.Shape),
			outputdef.WithReducible(d.Reducible),
			outputdef.WithRDifferentiable(d.RDifferentiable),
			outputdef.WithCDifferentiable(d.CDifferentiable),
			outputdef.WithAtomic(atomic),
			outputdef.WithHessian(d.Hessian),
			outputdef.WithMagnetic(d.Magnetic),
			outputdef.WithIntensive(d.Intensive),
		)
		if err != nil {
			return nil, err
		}
		l.log.Debug("declared output variable",
			zap.String("name", d.Name),
			zap.Ints("shape", d.Shape))
		vars = append(vars, v)
	}
	return outputdef.NewFittingOutputDef(vars...), nil
}
