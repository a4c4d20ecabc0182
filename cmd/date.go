package cmd

import (
	"fmt"
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// parseYearFromArgs interprets an optional single year argument. No argument
// means the all-time scope (0).
func parseYearFromArgs(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	if !yearPattern.MatchString(args[0]) {
		return 0, fmt.Errorf("Invalid year: %q", args[0])
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("Invalid year: %q", args[0])
	}
	return year, nil
}
