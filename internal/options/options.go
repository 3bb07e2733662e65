package options

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"solgen/internal/builder"
)

// Options contains parsed flags and ENV variables
type Options struct {
	Output          string `flag:"output"`           // output file, stdout if empty
	SolidityVersion string `flag:"solidity-version"` // pragma version
	License         string `flag:"license"`          // SPDX license identifier
	NoColor         bool   `flag:"no-color"`         // disable colored output
	Verbose         bool   `flag:"verbose"`          // verbose mode, print details to console
}

// BindFlags registers all options on the flag set
func (o *Options) BindFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.StringP("output", "o", "", "write the contract to a file instead of stdout")
	flags.String("solidity-version", builder.DefaultSolidityVersion, "solidity version of the pragma line")
	flags.String("license", "", "SPDX license identifier written above the pragma")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "print details")
}

// Load all sources of Options - flags, envs and the ".env" file of the working directory.
// A changed flag wins over ENV, ENV wins over the flag default.
func (o *Options) Load(flags *pflag.FlagSet) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot get current working directory: %w", err)
	}
	if err := loadDotEnv(dir); err != nil {
		return err
	}

	parser := viper.NewWithOptions(viper.EnvKeyReplacer(&envNamingConvention{}))
	if err := parser.BindPFlags(flags); err != nil {
		return err
	}
	parser.AutomaticEnv()

	// For each Options struct field with "flag" tag -> load value from parser
	reflection := reflect.Indirect(reflect.ValueOf(o))
	types := reflection.Type()
	for i := 0; i < reflection.NumField(); i++ {
		flag := types.Field(i).Tag.Get("flag")
		if len(flag) == 0 {
			continue
		}
		field := reflection.Field(i)
		switch field.Kind() {
		case reflect.Bool:
			field.SetBool(parser.GetBool(flag))
		case reflect.String:
			field.SetString(parser.GetString(flag))
		default:
			panic(fmt.Errorf("unsupported option type %s", field.Kind()))
		}
	}

	return nil
}

// BuilderOptions converts the options into renderer options
func (o *Options) BuilderOptions() []builder.Option {
	return []builder.Option{
		builder.WithVersion(o.SolidityVersion),
		builder.WithLicense(o.License),
	}
}

// Dump Options for debugging
func (o *Options) Dump() string {
	return fmt.Sprintf("Parsed options: %#v", o)
}
