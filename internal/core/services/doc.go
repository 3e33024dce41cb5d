// Package services implements the driving port interfaces.
// Services apply configured defaults, orchestrate the astro packages
// and call driven ports (adapters) for profiles and settings.
//
// Services are pure Go with no CGO.
package services
