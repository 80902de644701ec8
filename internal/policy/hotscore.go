package policy

import (
	"sort"
	"time"

	"github.com/jaehyo-dev/school-hub/backend/internal/models"
)

// HotScore computes the feed-ranking score of a post: likes are worth 2,
// comments 1, plus a recency bonus decaying linearly from 10 to 0 over the
// first 24 hours. Posts older than 24 hours get no bonus.
func HotScore(likeCount, commentCount int, createdAt, now time.Time) float64 {
	score := float64(likeCount*2 + commentCount)

	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 24 {
		score += (1 - ageHours/24) * 10
	}
	return score
}

// SortByHotScore orders posts by descending hot score as of now. Ties break
// toward the newer post so the ordering stays deterministic.
func SortByHotScore(posts []models.Post, now time.Time) {
	sort.SliceStable(posts, func(i, j int) bool {
		si := HotScore(posts[i].LikeCount, posts[i].CommentCount, posts[i].CreatedAt, now)
		sj := HotScore(posts[j].LikeCount, posts[j].CommentCount, posts[j].CreatedAt, now)
		if si != sj {
			return si > sj
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
