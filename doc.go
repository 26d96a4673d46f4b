// Package runpath is the root of a small toolkit for minimum-cost routes over
// cost grids where the legal moves depend on movement history.
//
// What is in the box?
//
//	grid/          immutable cost grid, text parser, bounds and index helpers
//	runpath/       run-length constrained Dijkstra over (cell, heading, run)
//	render/        arrow overlay of a route on its grid, optional ANSI heat colors
//	config/        TOML / YAML run settings translated into solver options
//	cmd/runpath/   command-line front end (text or JSON output)
//
// Quick ASCII example (Standard rules, at most 3 cells in a row):
//
//	grid     route
//	111      •>>
//	991      99v
//	991      99v      cost 4
//
// Every route starts on a free cell, never reverses, and turns within the
// configured run bounds. An unreachable goal is an explicit error, never a
// cost.
//
//	go get github.com/katalvlaran/runpath
package runpath
