package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/fitlog/pkg/entity"
	"gopkg.in/yaml.v3"
)

type targetsFile struct {
	Targets entity.MacroTarget `yaml:"targets"`
}

// LoadTargets reads macro targets from a YAML file. Keys missing from the file keep
// their default value. An empty path means the defaults.
func LoadTargets(path string) (entity.MacroTarget, error) {
	file := targetsFile{Targets: entity.DefaultMacroTarget()}
	if path == "" {
		return file.Targets, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.MacroTarget{}, errors.New("reading targets file error: " + err.Error())
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return entity.MacroTarget{}, errors.New("parsing targets file error: " + err.Error())
	}
	if err := validator.New().Struct(file.Targets); err != nil {
		return entity.MacroTarget{}, errors.New("invalid targets: " + err.Error())
	}
	return file.Targets, nil
}
