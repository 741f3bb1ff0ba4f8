package config

import (
	"fmt"
	"os"
	"strings"
)

// Template returns the starter TOML for a descriptor of the given kind.
// "catalogue" is presently the only kind; the switch is kept (rather than
// returning catalogueTemplate directly) so a second descriptor kind has
// somewhere to land without reshaping the call sites in cmd/catalogctl.
func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "catalogue":
		return catalogueTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

// WriteTemplate writes kind's starter TOML to path, refusing to clobber an
// existing file unless overwrite is set.
func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const catalogueTemplate = `log_level = "info"
families = ["game", "control", "crypto"]

[[classes]]
name = "detailed_rek"
class_id = 0x0010

[[classes]]
name = "simple_item"
class_id = 0x0011
`
