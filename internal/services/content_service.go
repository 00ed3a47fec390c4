package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/report"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/seo"
)

// ContentService owns blog posts and CMS pages. SEO scores are recomputed on
// every save so they can never go stale against the stored fields.
type ContentService struct {
	Content *repos.ContentRepo
}

func NewContentService(content *repos.ContentRepo) *ContentService {
	return &ContentService{Content: content}
}

// PostScore includes the content component; pages use PageScore.
func PostScore(title, metaDescription, keywords, content string) int {
	return seo.Overall(
		seo.TitleScore(title),
		seo.MetaDescriptionScore(metaDescription),
		seo.KeywordsScore(keywords),
		seo.ContentScore(content),
	)
}

func PageScore(title, metaDescription, keywords string) int {
	return seo.Overall(
		seo.TitleScore(title),
		seo.MetaDescriptionScore(metaDescription),
		seo.KeywordsScore(keywords),
	)
}

func (s *ContentService) ListPosts() ([]domain.BlogPost, error) { return s.Content.ListPosts() }
func (s *ContentService) ListPages() ([]domain.CMSPage, error) { return s.Content.ListPages() }

func (s *ContentService) CreatePost(p *domain.BlogPost) error {
	if p.Title == "" {
		return ErrMissingFields
	}
	p.ID = uuid.NewString()
	if p.Slug == "" {
		p.Slug = report.Slug(p.Title)
	}
	if p.Status == "" {
		p.Status = "DRAFT"
	}
	p.SEOScore = PostScore(p.Title, p.MetaDescription, p.Keywords, p.Content)
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.Content.CreatePost(p)
}

func (s *ContentService) UpdatePost(p *domain.BlogPost) error {
	if p.ID == "" || p.Title == "" {
		return ErrMissingFields
	}
	p.SEOScore = PostScore(p.Title, p.MetaDescription, p.Keywords, p.Content)
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.Content.UpdatePost(p)
}

func (s *ContentService) DeletePost(id string) error { return s.Content.DeletePost(id) }

func (s *ContentService) CreatePage(p *domain.CMSPage) error {
	if p.Title == "" {
		return ErrMissingFields
	}
	p.ID = uuid.NewString()
	if p.Slug == "" {
		p.Slug = report.Slug(p.Title)
	}
	if p.Status == "" {
		p.Status = "DRAFT"
	}
	p.SEOScore = PageScore(p.Title, p.MetaDescription, p.Keywords)
	return s.Content.CreatePage(p)
}

func (s *ContentService) UpdatePage(p *domain.CMSPage) error {
	if p.ID == "" || p.Title == "" {
		return ErrMissingFields
	}
	p.SEOScore = PageScore(p.Title, p.MetaDescription, p.Keywords)
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.Content.UpdatePage(p)
}
