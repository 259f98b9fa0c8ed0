package eggorm

// config.go allows the options of AttributeFields to be read from a YAML file, eg:
//
//	exclude: [password]
//	map:
//	  createdAt: created
//	commentToDescription: true
//	globalId: true

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FieldsConfig holds the field generation options read by LoadFieldsConfig
type FieldsConfig struct {
	Exclude              []string          `yaml:"exclude"`
	Only                 []string          `yaml:"only"`
	Map                  map[string]string `yaml:"map"`
	AllowNull            bool              `yaml:"allowNull"`
	CommentToDescription bool              `yaml:"commentToDescription"`
	GlobalID             bool              `yaml:"globalId"`
}

// LoadFieldsConfig decodes a FieldsConfig from YAML. Unknown keys are an error.
// An empty document gives an empty config.
func LoadFieldsConfig(r io.Reader) (*FieldsConfig, error) {
	cfg := &FieldsConfig{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w decoding fields config", err)
	}
	return cfg, nil
}

// Options returns the options for AttributeFields that the config specifies
func (cfg *FieldsConfig) Options() []Option {
	var r []Option
	if len(cfg.Exclude) > 0 {
		r = append(r, Exclude(cfg.Exclude...))
	}
	if cfg.Only != nil {
		r = append(r, Only(cfg.Only...))
	}
	if len(cfg.Map) > 0 {
		r = append(r, Rename(cfg.Map))
	}
	return append(r,
		AllowNull(cfg.AllowNull),
		CommentToDescription(cfg.CommentToDescription),
		GlobalID(cfg.GlobalID),
	)
}
