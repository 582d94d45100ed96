package main

import (
	"github.com/gostonefire/extendiblehash"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"os"
)

const defaultConfigFile = "~/.exthash.yaml"

// Config - Settings read from the YAML configuration file, flags given on the command line take precedence
type Config struct {
	HashModulo     int64  `yaml:"hashModulo"`
	MaxGlobalDepth int    `yaml:"maxGlobalDepth"`
	BucketCapacity int    `yaml:"bucketCapacity"`
	LogLevel       string `yaml:"logLevel"`
	LogFile        string `yaml:"logFile"`
}

// Common - Options shared by all commands
type Common struct {
	ConfigFile string `short:"c" long:"config" description:"YAML configuration file, defaults to ~/.exthash.yaml"`
	Modulo     *int64 `short:"m" long:"modulo" description:"hash modulo, the number of distinct hash values"`
	MaxDepth   *int   `short:"d" long:"maxdepth" description:"max global depth of the directory"`
	Capacity   *int   `short:"b" long:"capacity" description:"number of entries each bucket can hold"`
	LogLevel   string `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	LogFile    string `long:"logfile" description:"also write logs to this file, rotated by size"`
}

// DefaultConfig - Returns the configuration used when no file and no flags say otherwise
func DefaultConfig() Config {
	c := extendiblehash.DefaultConf()
	return Config{
		HashModulo:     c.HashModulo,
		MaxGlobalDepth: c.MaxGlobalDepth,
		BucketCapacity: c.BucketCapacity,
		LogLevel:       "warning",
	}
}

// readConfig - Reads the configuration file at path on top of the defaults. An empty path means the default
// file, which is allowed to be missing. A file given explicitly must exist.
func readConfig(path string) (config Config, err error) {
	config = DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		err = errors.Wrapf(err, "could not resolve config file %s", path)
		return
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			err = nil
			return
		}
		err = errors.Wrapf(err, "could not read config file %s", expanded)
		return
	}

	err = yaml.UnmarshalStrict(data, &config)
	if err != nil {
		err = errors.Wrapf(err, "could not parse config file %s", expanded)
		return
	}

	return
}

// merge - Returns config with every option given in common replacing the file value, an explicit zero included
func (c Config) merge(common Common) Config {
	if common.Modulo != nil {
		c.HashModulo = *common.Modulo
	}
	if common.MaxDepth != nil {
		c.MaxGlobalDepth = *common.MaxDepth
	}
	if common.Capacity != nil {
		c.BucketCapacity = *common.Capacity
	}
	if common.LogLevel != "" {
		c.LogLevel = common.LogLevel
	}
	if common.LogFile != "" {
		c.LogFile = common.LogFile
	}

	return c
}

// indexConf - Returns the index configuration described by c
func (c Config) indexConf() extendiblehash.Conf {
	return extendiblehash.Conf{
		HashModulo:     c.HashModulo,
		MaxGlobalDepth: c.MaxGlobalDepth,
		BucketCapacity: c.BucketCapacity,
	}
}

// load - Reads the configuration file named by the common options, applies the flags and sets up logging
func (o Common) load() (config Config, err error) {
	config, err = readConfig(o.ConfigFile)
	if err != nil {
		return
	}
	config = config.merge(o)

	err = setupLogging(config.LogLevel, config.LogFile)

	return
}
