package comment

import (
	"cmp"
	"slices"
	"strings"

	"github.com/taibuivan/marquee/internal/platform/validate"
)

// SortKey selects the order of top-level comments.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortMostLiked    SortKey = "most_liked"
	SortMostDisliked SortKey = "most_disliked"
)

// DefaultSort matches the order the web client shows first.
const DefaultSort = SortNewest

// ParseSortKey reads a sort query value. Empty means [DefaultSort].
func ParseSortKey(raw string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	switch key {
	case "":
		return DefaultSort, nil
	case SortNewest, SortOldest, SortMostLiked, SortMostDisliked:
		return key, nil
	default:
		return "", validate.OneOfError(FieldSort, string(SortNewest), string(SortOldest), string(SortMostLiked), string(SortMostDisliked))
	}
}

// SortForest orders the forest in place.
//
// Roots follow key. Replies at every depth are ordered by net score
// descending whatever key says.
//
// Ties are broken by creation time, older first, then by id, so the same
// input always yields the same order.
func SortForest(roots []*Node, key SortKey) {
	slices.SortStableFunc(roots, comparator(key))

	Walk(roots, func(node *Node) {
		slices.SortStableFunc(node.Children, byNetScoreDesc)
	})
}

func comparator(key SortKey) func(a, b *Node) int {
	switch key {
	case SortOldest:
		return byOldest
	case SortMostLiked:
		return byNetScoreDesc
	case SortMostDisliked:
		return byNetScoreAsc
	default:
		return byNewest
	}
}

func byNewest(a, b *Node) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func byOldest(a, b *Node) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func byNetScoreDesc(a, b *Node) int {
	if c := cmp.Compare(b.NetScore(), a.NetScore()); c != 0 {
		return c
	}
	return byOldest(a, b)
}

func byNetScoreAsc(a, b *Node) int {
	if c := cmp.Compare(a.NetScore(), b.NetScore()); c != 0 {
		return c
	}
	return byOldest(a, b)
}
