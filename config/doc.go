// Package config loads the commute configuration: the list of desired
// connections the tool should keep an eye on, read from a YAML file
// under the user's config directory.
package config
