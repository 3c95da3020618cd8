package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/topup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   path to the users JSON file
//	-p string   path to the companies JSON file
//	-o string   path of the output report
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-p", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "path to users JSON file")
	fs.StringVar(&cfg.CompaniesFile, "p", cfg.CompaniesFile, "path to companies JSON file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "path to output report")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
