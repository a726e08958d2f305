// Package config manages user-level settings stored at ~/.fredapp/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default provider and the Fred version constraint used for new projects.
package config
