// Package types defines every cross-package data structure used by the advent CLI.
package types

const (
	FormatRaw  = "raw"
	FormatJSON = "json"

	PartOne  = "1"
	PartTwo  = "2"
	PartBoth = "both"

	CommandSolve = "solve"
	CommandList  = "list"
)

// Answer is one solved puzzle part.
type Answer struct {
	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Value string `json:"value"`
}

// DayDescription summarizes a registered puzzle day for listings.
type DayDescription struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	InputFiles []string `json:"inputFiles"`
}
