// Package file loads ephemeris coefficient tables from TOML files.
//
// A series directory holds one <body>.toml file per body:
//
//	body = "earth"
//	time_unit = "millennia"   # or "centuries"
//	scale = 1e-8
//
//	[[longitude]]             # one block per power of time, L0 first
//	terms = [[175347046.0, 0.0, 0.0], ...]
//
// An elements file overrides the built-in orbital element catalogue:
//
//	[[body]]
//	name = "chiron"
//	epoch = 2450128.0
//	semi_major_axis = 13.648
//	...
//
// The series directory "builtin" selects the tables embedded in the binary.
package file
