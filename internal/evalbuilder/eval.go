package evalbuilder

import (
	"fmt"

	material "github.com/ChizhovVadim/CounterUci/pkg/eval/material"
	pesto "github.com/ChizhovVadim/CounterUci/pkg/eval/pesto"
)

const (
	Pesto     = "pesto"
	Material  = "material"
	Classical = Material
)

// Names lists the evaluation sources, the default first.
func Names() []string {
	return []string{Pesto, Material}
}

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", Pesto:
			return pesto.NewEvaluationService()
		case Material:
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}

func Validate(key string) error {
	switch key {
	case "", Pesto, Material:
		return nil
	}
	return fmt.Errorf("bad eval %v", key)
}
