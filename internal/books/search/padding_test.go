package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"searchscout/internal/books/intent"
	"searchscout/internal/common/logger"
)

func TestPadScoresAuthorMatches(t *testing.T) {
	p := NewPadder(logger.NewTestLogger(t))

	results := p.Pad(intent.Intent{Author: "村上春樹"}, map[string]bool{}, "")

	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), matchedTierCap)
	for _, c := range results {
		assert.Equal(t, "村上春樹", c.Author)
		assert.Contains(t, c.Description, "関連作品")
	}
}

func TestPadCategoryTierForTechIntent(t *testing.T) {
	p := NewPadder(logger.NewTestLogger(t))

	results := p.Pad(intent.Intent{Category: "tech"}, map[string]bool{}, "tech")

	assert.NotEmpty(t, results)
	techCount := 0
	for _, c := range results {
		if strings.Contains(c.Description, "技術書") {
			techCount++
		}
	}
	assert.Greater(t, techCount, 0)
	assert.LessOrEqual(t, techCount, categoryTierCap)
}

func TestPadSkipsSeenISBNs(t *testing.T) {
	p := NewPadder(logger.NewTestLogger(t))

	seen := map[string]bool{
		"9784062764742": true, // 風の歌を聴け
		"9784062748780": true, // ノルウェイの森
	}
	results := p.Pad(intent.Intent{Author: "村上春樹"}, seen, "")

	for _, c := range results {
		assert.NotEqual(t, "9784062764742", c.ISBN)
		assert.NotEqual(t, "9784062748780", c.ISBN)
	}
}

func TestPadUnconstrainedIntentFillsWithPopularItems(t *testing.T) {
	p := NewPadder(logger.NewTestLogger(t))

	results := p.Pad(intent.Intent{}, map[string]bool{}, "")

	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), generalTierCap)
	for _, c := range results {
		assert.Equal(t, "人気作品", c.Description)
	}
}

func TestPadMarksSeenAsItAdds(t *testing.T) {
	p := NewPadder(logger.NewTestLogger(t))

	seen := map[string]bool{}
	results := p.Pad(intent.Intent{Author: "東野圭吾"}, seen, "")

	for _, c := range results {
		assert.True(t, seen[c.ISBN])
	}
}

func TestPadNeverDuplicatesWithinResult(t *testing.T) {
	p := NewPadder(logger.NewTestLogger(t))

	results := p.Pad(intent.Intent{Title: "Python", Category: "tech"}, map[string]bool{}, "tech")

	isbns := make(map[string]bool)
	for _, c := range results {
		assert.False(t, isbns[c.ISBN])
		isbns[c.ISBN] = true
	}
}
