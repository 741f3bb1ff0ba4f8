// Command catalogctl loads a catalogue descriptor, registers the opcode
// and constructor catalogue it names, and validates the wiring at
// startup — the boundary where this module's registries meet logging and
// configuration, rather than inside the codec layer itself.
package main

import (
	"flag"
	"fmt"
	"os"

	logs "github.com/danmuck/smplog"

	"github.com/duskwire/pscodec/internal/config"
	"github.com/duskwire/pscodec/internal/construct"
	"github.com/duskwire/pscodec/internal/logging"
	"github.com/duskwire/pscodec/internal/packet"
)

func main() {
	init := flag.Bool("init", false, "write a starter catalogue.toml and exit")
	output := flag.String("output", "catalogue.toml", "path for -init's config template")
	force := flag.Bool("force", false, "overwrite an existing config with -init")
	configPath := flag.String("config", "catalogue.toml", "path to the catalogue descriptor")
	flag.Parse()

	if *init {
		logging.ConfigureRuntime()
		if err := config.WriteTemplate(*output, "catalogue", *force); err != nil {
			logs.Error(err, "catalogctl")
			os.Exit(1)
		}
		logs.Infof("wrote catalogue template to %s", *output)
		return
	}

	cfg, err := config.LoadCatalogueConfig(*configPath)
	if err != nil {
		logging.ConfigureRuntime()
		logs.Error(err, "catalogctl")
		os.Exit(1)
	}
	logging.ConfigureFromCatalogue(cfg)

	creg := construct.NewRegistry()
	if err := registerConstructors(creg, cfg.Classes); err != nil {
		logs.Error(err, "catalogctl")
		os.Exit(1)
	}

	reg := packet.NewRegistry()
	if err := registerFamilies(reg, creg, cfg.Families); err != nil {
		logs.Error(err, "catalogctl")
		os.Exit(1)
	}

	logs.Infof("catalogue ready: %d families, %d constructor classes, log level %s",
		len(cfg.Families), len(cfg.Classes), cfg.LogLevel)
}

// registerConstructors binds the constructor classes named in a catalogue
// descriptor to reg. Only the names this module actually ships are
// recognized; an unfamiliar name is a fatal configuration error rather
// than a silently-skipped class.
func registerConstructors(reg *construct.Registry, classes []config.ClassConfig) error {
	for _, cls := range classes {
		switch cls.Name {
		case "detailed_rek":
			if err := construct.RegisterDetailedREK(reg); err != nil {
				return err
			}
		case "simple_item":
			if err := construct.RegisterSimpleItem(reg); err != nil {
				return err
			}
		default:
			return fmt.Errorf("catalogctl: unknown constructor class %q", cls.Name)
		}
	}
	return nil
}

// registerFamilies binds each named opcode family's catalogue to reg.
func registerFamilies(reg *packet.Registry, creg *construct.Registry, families []string) error {
	for _, fam := range families {
		switch fam {
		case "game":
			if err := packet.RegisterGameCatalogue(reg, creg); err != nil {
				return err
			}
		case "control":
			if err := packet.RegisterControlCatalogue(reg); err != nil {
				return err
			}
		case "crypto":
			if err := packet.RegisterCryptoCatalogue(reg); err != nil {
				return err
			}
		default:
			return fmt.Errorf("catalogctl: unknown opcode family %q", fam)
		}
	}
	return nil
}
