package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/thoas/go-funk"

	"github.com/stegosaurus-midi/usbname/board"
	"github.com/stegosaurus-midi/usbname/pkg"
)

// BoardsCommand lists the supported board profiles.
type BoardsCommand struct {
	Mode string `short:"m" long:"mode" choice:"source" choice:"external" description:"only list boards in this mode"`

	app *app
}

// Execute implements flags.Commander.
func (c *BoardsCommand) Execute(_ []string) error {
	cfg, err := c.app.loadConfig()
	if err != nil {
		return err
	}
	if err := c.app.finish(cfg); err != nil {
		return err
	}

	profiles := filterProfiles(board.Profiles(), c.Mode)
	var built board.Identity
	if p, err := board.Selected(); err == nil {
		built = p.Identity
	}

	table := tablewriter.NewWriter(c.app.out)
	table.Header("Board", "Name", "MCU", "Mode", "Index", "Macros", "Product Name Source")
	for _, p := range profiles {
		id := string(p.Identity)
		if p.Identity == built {
			id += " *"
		}
		if err := table.Append(
			id,
			p.Name,
			p.MCU,
			p.Mode.String(),
			strconv.Itoa(int(p.ProductIndex)),
			strings.Join(p.Macros, " "),
			nameSource(p),
		); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentCLI, "listed boards", "count", len(profiles), "mode", c.Mode)
	return nil
}

// filterProfiles keeps profiles whose mode is named mode; an empty mode
// keeps all.
func filterProfiles(profiles []board.Profile, mode string) []board.Profile {
	if mode == "" {
		return profiles
	}
	return funk.Filter(profiles, func(p board.Profile) bool {
		return p.Mode.String() == mode
	}).([]board.Profile)
}

func nameSource(p board.Profile) string {
	if p.External != nil {
		return fmt.Sprintf("%s (%s)", p.External.File, p.External.Key)
	}
	return "firmware descriptor"
}
