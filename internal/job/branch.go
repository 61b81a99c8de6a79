package job

import (
	"fmt"
	"regexp"
)

// defaultBranchPatterns builds every branch when the document has no
// branch_patterns entry.
var defaultBranchPatterns = []string{".*"}

// shouldBuild reports whether any pattern matches the branch. Matches are
// anchored at the start of the branch name, not the full string, so
// "release-.*" matches "release-1" but not "my-release-1".
func shouldBuild(patterns []string, branch string) (bool, error) {
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")")
		if err != nil {
			return false, fmt.Errorf("branch pattern %q: %v", p, err)
		}
		if re.MatchString(branch) {
			return true, nil
		}
	}
	return false, nil
}
