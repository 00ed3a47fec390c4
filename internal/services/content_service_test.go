package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

func TestCreatePostScoresAndSlugs(t *testing.T) {
	db := memdb(t)
	svc := NewContentService(repos.NewContentRepo(db))

	p := &domain.BlogPost{
		Title:           "Five Ways to Keep Inventory Lean", // 32 chars -> 100
		Author:          "Rosa",
		MetaDescription: strings.Repeat("m", 130),           // -> 100
		Keywords:        "inventory, stock, warehouse",      // 3 -> 90
		Content:         strings.Repeat("body text ", 40),   // 400 chars -> 95
	}
	require.NoError(t, svc.CreatePost(p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "five-ways-to-keep-inventory-lean", p.Slug)
	assert.Equal(t, "DRAFT", p.Status)
	// (100+100+90+95)/4 = 96.25 -> 96
	assert.Equal(t, 96, p.SEOScore)
}

func TestUpdatePostRecomputesScore(t *testing.T) {
	db := memdb(t)
	svc := NewContentService(repos.NewContentRepo(db))

	p := &domain.BlogPost{
		Title:           "A Good Length Title Here",
		MetaDescription: strings.Repeat("m", 130),
		Keywords:        "a, b, c",
		Content:         strings.Repeat("x", 400),
	}
	require.NoError(t, svc.CreatePost(p))
	first := p.SEOScore

	p.Title = "short" // drops title score to 50
	require.NoError(t, svc.UpdatePost(p))
	assert.Less(t, p.SEOScore, first)

	got, err := repos.NewContentRepo(db).GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.SEOScore, got.SEOScore, "stored score matches recomputed score")
}

func TestPageScoreSkipsContentComponent(t *testing.T) {
	// pages have no content component: (100+100+90)/3 = 96.66 -> 97
	title := strings.Repeat("t", 20)
	meta := strings.Repeat("m", 130)
	assert.Equal(t, 97, PageScore(title, meta, "a, b, c"))
	// posts include it: (100+100+90+65)/4 = 88.75 -> 89
	assert.Equal(t, 89, PostScore(title, meta, "a, b, c", "short body"))
}

func TestCreatePostRequiresTitle(t *testing.T) {
	db := memdb(t)
	svc := NewContentService(repos.NewContentRepo(db))
	assert.ErrorIs(t, svc.CreatePost(&domain.BlogPost{}), ErrMissingFields)
}
