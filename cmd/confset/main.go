// Command confset lists and changes settings in /etc/default and
// /etc/sysconfig style config files.
//
//	confset                      # list all settings of all files
//	confset grub                 # list all settings in grub
//	confset grub.GRUB_TIMEOUT    # show a single setting
//	confset grub.GRUB_TIMEOUT=5  # change (or add) a setting
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "confset",
		Usage:     "Show or change package configuration settings",
		ArgsUsage: "[name[.key[=value]]]",

		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "info",
				Aliases: []string{"i"},
				Usage:   "Show the help text of every setting",
			},
			&cli.BoolFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "Sort settings by key instead of file order",
			},
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: "Print settings as YAML",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "Only show settings whose qualified key matches this glob pattern",
			},
			&cli.StringSliceFlag{
				Name:  "comment",
				Usage: "Comment line to add above a new setting (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the confset options file",
				EnvVars: []string{"CONFSET_CONFIG"},
			},
		},
		Action: run,
	}
}
