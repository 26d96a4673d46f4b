// Package render draws a reconstructed runpath route on top of its grid.
//
// Each path cell is replaced by the arrow of the heading it was entered in
// (^ v < >), the start cell by a bullet (•), and every other cell keeps its
// cost digit. With WithColor the arrows are bright white and the digits are
// shaded on a red (cheap) to blue (costly) gradient using 24-bit ANSI escapes.
//
// The output is for people only; nothing parses it back.
package render
