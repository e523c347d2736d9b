/*
main.go - Command entry point

PURPOSE:
  Prints California state pay periods as a table, JSON or an iCalendar
  file.

STARTUP SEQUENCE:
  1. Load configuration (.env, then PAYPERIODS_* variables)
  2. Initialize the logger (stderr)
  3. Run the command and exit with its status

EXAMPLES:
  # Pay period containing today
  ./payperiods

  # Pay period containing a date, as JSON
  ./payperiods -date 2022-08-01 -format json

  # A whole year as an importable calendar
  ./payperiods -year 2025 -format ics -name "2025 Pay Periods" > 2025.ics

  # Hours for a half-time position
  ./payperiods -year 2025 -time-base 1/2

ENVIRONMENT:
  PAYPERIODS_ENVIRONMENT    development | staging | production | test
  PAYPERIODS_LOG_LEVEL      logrus level (default: info)
  PAYPERIODS_FORMAT         default -format
  PAYPERIODS_CALENDAR_NAME  default -name
  PAYPERIODS_TIME_BASE      default -time-base

SEE ALSO:
  - cli/app.go: Command dispatch
  - config/config.go: Environment variables
*/
package main

import (
	"fmt"
	"os"

	"github.com/cagov/payperiods/cli"
	"github.com/cagov/payperiods/config"
	"github.com/cagov/payperiods/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "payperiods: could not load configuration: %v\n", err)
		os.Exit(2)
	}

	logger.Init(cfg.Environment, cfg.LogLevel)
	logger.Log.WithField("environment", cfg.Environment).Debug("configuration loaded")

	app := cli.NewApp(os.Stdout, os.Stderr, cfg, logger.Log)
	os.Exit(cli.ExitCode(app.Run(os.Args[1:])))
}
