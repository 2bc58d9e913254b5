// Package ui renders the user list screen. Every component is a pure
// function of the screen state: rendering the same state twice produces
// identical markup, and the package holds no state of its own.
//
// Components satisfy templ.Component, so they render as plain HTML on a
// full page load and as DataStar element patches when pushed over the
// update stream. The screen container keeps a stable id so patches morph
// it in place.
package ui
