package app

import "github.com/urfave/cli/v2"

var (
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the project data file (created if it does not exist)",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path for the exported PDF report",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable desktop notifications for long sessions",
	}

	longSessionFlag = &cli.UintFlag{
		Name:  "long-session",
		Usage: "Minutes of activity before the long-session alert fires (default: 60)",
	}
)
