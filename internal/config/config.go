// Package config defines the data structures related to configuration
// and includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"immoforecast/internal/simulation"
	"immoforecast/pkg/tax"
)

// Configuration holds all configuration for immoforecast.
type Configuration struct {
	Simulations []simulation.Simulation `mapstructure:"simulations"`
	Borrower    BorrowerConfig          `mapstructure:"borrower"`
	Logging     LoggingConfig           `mapstructure:"logging"`
	Output      OutputConfig            `mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`      // debug, info, warn, error
	Format     string `mapstructure:"format"`     // json, console
	OutputFile string `mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format"` // pretty, csv
}

// BorrowerConfig carries the borrower profile used by the bankability
// indicator. Optional; zero values disable the indicator.
type BorrowerConfig struct {
	MonthlyIncome float64 `mapstructure:"monthlyIncome"`
	MonthlyDebt   float64 `mapstructure:"monthlyDebt"`
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs plausibility checks and returns
// warnings. Warnings never block a run; the engine tolerates odd input
// by design, but a typo'd tax bracket is worth telling the user about.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Simulations) == 0 {
		warnings = append(warnings, "no simulations configured")
	}

	for _, sim := range c.Simulations {
		label := sim.Name
		if label == "" {
			label = sim.ID
		}
		data := sim.Data

		if !tax.ValidMarginalRate(data.MarginalTaxRate) {
			warnings = append(warnings, fmt.Sprintf(
				"simulation %q: marginal tax rate %.1f%% is not a legal bracket %v",
				label, data.MarginalTaxRate, tax.MarginalRates))
		}
		if data.VacancyRate < 0 || data.VacancyRate > 100 {
			warnings = append(warnings, fmt.Sprintf(
				"simulation %q: vacancy rate %.1f%% outside [0,100]",
				label, data.VacancyRate))
		}
		if data.LoanDurationYears < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"simulation %q: negative loan duration %d",
				label, data.LoanDurationYears))
		}
		if data.UnitCount != len(data.Rents) {
			warnings = append(warnings, fmt.Sprintf(
				"simulation %q: unit count %d does not match %d configured rents",
				label, data.UnitCount, len(data.Rents)))
		}

		seen := make(map[string]bool)
		for _, charge := range data.Charges {
			if seen[charge.ID] {
				warnings = append(warnings, fmt.Sprintf(
					"simulation %q: duplicate charge id %q", label, charge.ID))
			}
			seen[charge.ID] = true
		}
	}

	return warnings
}
