// matcher — candidate/vacancy matching engine for the agency back office.
//
// Scores every candidate in the pool against an open vacancy across six
// weighted criteria and produces a ranked, explainable result.
package main

import (
	"os"

	"github.com/talentdesk/matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
