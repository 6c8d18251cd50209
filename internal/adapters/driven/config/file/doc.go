// Package file stores feedme settings in ~/.feedme/config.toml.
//
// The file uses ordinary TOML tables:
//
//	[database]
//	dir = "/srv/feedme"
//
//	[units]
//	custom = ["scoop", "knob"]
//
//	[grocery]
//	workers = 4
//	subtract_pantry = true
package file
