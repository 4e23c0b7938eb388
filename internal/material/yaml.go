package material

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// yamlFile is the on-disk shape of a material overrides file.
type yamlFile struct {
	Materials map[string]Coefficients `yaml:"materials"`
}

// LoadYAML reads a material overrides file and returns its entries.
func LoadYAML(path string) (map[string]Coefficients, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "material: read overrides file")
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "material: unmarshal overrides")
	}
	return f.Materials, nil
}

// WriteYAML writes a table to an overrides file loadable by LoadYAML.
func WriteYAML(path string, t Table) error {
	out := yamlFile{Materials: make(map[string]Coefficients, t.Len())}
	for _, name := range t.Names() {
		c, _ := t.Coefficients(name)
		out.Materials[name] = c
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return eris.Wrap(err, "material: marshal overrides")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "material: write overrides file")
	}
	return nil
}
