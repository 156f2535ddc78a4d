// Package registry maps the plugin IDs used in project files to the
// compiled plugins that implement them.
//
// During application startup every built-in module registers its plugin
// factories, and the registry is then validated against the IDs the project
// requests, so a misspelled plugin fails before any project code runs.
package registry
