package project

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// MinimumReact is the oldest React release the bundled templates target.
const MinimumReact = "18.0.0"

var leadingVersion = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// ReactAdvisory returns a warning when the declared react range only admits
// releases older than MinimumReact. Ranges that are not semver constraints
// (tags, workspace or file references) produce no advisory.
func (p *Project) ReactAdvisory() (string, bool) {
	return rangeAdvisory(p.ReactRange())
}

func rangeAdvisory(declared string) (string, bool) {
	if declared == "" {
		return "", false
	}

	constraint, err := semver.NewConstraint(declared)
	if err != nil {
		return "", false
	}

	minimum := semver.MustParse(MinimumReact)
	if constraint.Check(minimum) {
		return "", false
	}

	lowest := leadingVersion.FindString(declared)
	if lowest == "" {
		return "", false
	}
	v, err := semver.NewVersion(lowest)
	if err != nil || !v.LessThan(minimum) {
		return "", false
	}

	return fmt.Sprintf("react %s is older than %s; installed components may not work as expected", declared, MinimumReact), true
}
