// Package config loads neoexport configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into export options.
package config
