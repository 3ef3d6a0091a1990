// Package app defines the psp command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/UzielLH/PSP/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the psp app instance.
func Get() *cli.App {
	pspApp := &cli.App{
		Name: "psp",
		Usage: `
		psp is a PSP time recording tool for the command line. It times work
		on a fixed catalog of project activities, records interruptions and
		quality defects, and reports the accumulated results.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Print the activity log table",
				Flags:  []cli.Flag{fileFlag, noColorFlag},
				Action: reportAction,
			},
			{
				Name:   "defects",
				Usage:  "Print the defect log table",
				Flags:  []cli.Flag{fileFlag, noColorFlag},
				Action: defectsAction,
			},
			{
				Name:   "stats",
				Usage:  "Print the per-activity time aggregate and chart",
				Flags:  []cli.Flag{fileFlag, noColorFlag},
				Action: statsAction,
			},
			{
				Name:   "export",
				Usage:  "Export the project report as a PDF document",
				Flags:  []cli.Flag{fileFlag, outputFlag},
				Action: exportAction,
			},
			{
				Name:   "charts",
				Usage:  "Write the bar and pie chart images next to the project file",
				Flags:  []cli.Flag{fileFlag},
				Action: chartsAction,
			},
			{
				Name:   "projects",
				Usage:  "List recently opened projects",
				Flags:  []cli.Flag{noColorFlag},
				Action: projectsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			fileFlag,
			noColorFlag,
			disableNotificationFlag,
			longSessionFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return pspApp
}
