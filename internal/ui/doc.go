// Package ui draws the on-screen HUD and debug overlay of the window build.
// Everything except this file requires the ebiten build tag.
package ui
