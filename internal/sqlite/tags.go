package sqlite

import (
	"sort"
	"strings"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

// aggregateTags derives the tag frequency table from raw denormalized tag
// strings: split on comma, trim, lowercase, drop empties, count. Ties in
// count break on ascending tag name so ordering is stable across runs.
//
// Pure function over its input; swapping the denormalized strings for a
// normalized tag relation later only needs a different feeder, not a new
// write path.
func aggregateTags(tagStrings []string) []types.TagCount {
	counts := make(map[string]int)
	for _, raw := range tagStrings {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag != "" {
				counts[tag]++
			}
		}
	}

	tags := make([]types.TagCount, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, types.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	return tags
}
