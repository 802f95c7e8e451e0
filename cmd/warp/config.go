package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"gopkg.in/yaml.v3"
)

// defaultConfigPath is $XDG_CONFIG_HOME/warp/config.yaml or its platform
// equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "warp", "config.yaml")
}

// loadConfig reads a YAML configuration file into conf. Nested maps are
// flattened to dotted keys:
//
//	warp:
//	  compact: true
//	trace:
//	  warp.engine: Debug
//
// yields keys `warp.compact` and `trace.warp.engine`. A missing file is not
// an error if optional is set.
func loadConfig(conf testconfig.Conf, path string, optional bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	flatten(conf, "", tree)
	tracer().Debugf("configuration from %s: %v", path, keys(conf))
	return nil
}

func flatten(conf testconfig.Conf, prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(conf, key, val)
		case nil:
			// ignore empty entries
		default:
			conf[key] = fmt.Sprint(val)
		}
	}
}

func keys(conf testconfig.Conf) []string {
	k := make([]string, 0, len(conf))
	for key := range conf {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}
