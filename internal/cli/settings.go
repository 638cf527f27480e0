package cli

import (
	"strconv"

	"github.com/julianstephens/lifehub/internal/derive"
	"github.com/julianstephens/lifehub/internal/errors"
	"github.com/julianstephens/lifehub/internal/store"
)

type SettingsCmd struct {
	Show       SettingsShowCmd       `cmd:"" default:"1" help:"Show current settings."`
	Set        SettingsSetCmd        `cmd:"" help:"Change settings."`
	NightShift SettingsNightShiftCmd `cmd:"" name:"night-shift" help:"Toggle night-shift mode."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	s := ctx.Session.Snapshot().Settings()
	ctx.printf("Emergency fund:   %s\n", s.EmergencyFundName)
	ctx.printf("Fund target:      %s\n", derive.FormatGBP(s.EmergencyFundTarget))
	ctx.printf("Night-shift mode: %s\n", onOff(s.NightShiftMode))
	if ctx.Config != nil {
		ctx.printf("Data directory:   %s\n", ctx.Config.DataDir)
		ctx.printf("Storage driver:   %s\n", ctx.Config.Storage)
	}
	return nil
}

type SettingsSetCmd struct {
	FundTarget string `name:"fund-target" help:"Emergency fund target in pounds."`
	FundName   string `name:"fund-name" help:"Emergency fund name."`
	NightShift string `name:"night-shift" help:"Night-shift mode (on|off)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	var patch store.SettingsPatch
	if c.FundTarget != "" {
		target, err := parseAmount(c.FundTarget)
		if err != nil {
			return err
		}
		patch.EmergencyFundTarget = &target
	}
	if c.FundName != "" {
		patch.EmergencyFundName = &c.FundName
	}
	if c.NightShift != "" {
		on, err := parseOnOff(c.NightShift)
		if err != nil {
			return err
		}
		patch.NightShiftMode = &on
	}

	if patch == (store.SettingsPatch{}) {
		return errors.Validationf("nothing to change (use --fund-target, --fund-name or --night-shift)")
	}

	err := ctx.Session.UpdateSettings(patch)
	if applied(err) {
		ctx.printf("Settings updated\n")
	}
	return err
}

type SettingsNightShiftCmd struct{}

func (c *SettingsNightShiftCmd) Run(ctx *Context) error {
	err := ctx.Session.ToggleNightShift()
	if applied(err) {
		ctx.printf("Night-shift mode %s\n", onOff(ctx.Session.Snapshot().NightShiftMode))
	}
	return err
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.Validationf("invalid value %q (expected on or off)", s)
	}
	return b, nil
}
