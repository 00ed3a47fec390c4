package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

// ContentRepo serves both blog posts and CMS pages.
type ContentRepo struct{ db *sqlx.DB }

func NewContentRepo(db *sqlx.DB) *ContentRepo { return &ContentRepo{db: db} }

const postCols = `id, title, slug, author, meta_description, keywords, content, seo_score, status,
	COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ContentRepo) ListPosts() ([]domain.BlogPost, error) {
	var out []domain.BlogPost
	err := r.db.Select(&out, `SELECT `+postCols+` FROM blog_posts ORDER BY created_at DESC`)
	return out, err
}

func (r *ContentRepo) GetPost(id string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if err := r.db.Get(&p, `SELECT `+postCols+` FROM blog_posts WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ContentRepo) CreatePost(p *domain.BlogPost) error {
	_, err := r.db.Exec(`
		INSERT INTO blog_posts(id, title, slug, author, meta_description, keywords, content, seo_score, status, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Title, p.Slug, p.Author, p.MetaDescription, p.Keywords, p.Content, p.SEOScore, p.Status, p.CreatedAt)
	return err
}

func (r *ContentRepo) UpdatePost(p *domain.BlogPost) error {
	_, err := r.db.Exec(`
		UPDATE blog_posts
		SET title=?, slug=?, author=?, meta_description=?, keywords=?, content=?, seo_score=?, status=?, updated_at=?
		WHERE id=?`,
		p.Title, p.Slug, p.Author, p.MetaDescription, p.Keywords, p.Content, p.SEOScore, p.Status, p.UpdatedAt, p.ID)
	return err
}

func (r *ContentRepo) DeletePost(id string) error {
	_, err := r.db.Exec(`DELETE FROM blog_posts WHERE id=?`, id)
	return err
}

const pageCols = `id, title, slug, meta_description, keywords, content, seo_score, status,
	COALESCE(updated_at,'') AS updated_at`

func (r *ContentRepo) ListPages() ([]domain.CMSPage, error) {
	var out []domain.CMSPage
	err := r.db.Select(&out, `SELECT `+pageCols+` FROM cms_pages ORDER BY title`)
	return out, err
}

func (r *ContentRepo) GetPage(id string) (*domain.CMSPage, error) {
	var p domain.CMSPage
	if err := r.db.Get(&p, `SELECT `+pageCols+` FROM cms_pages WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ContentRepo) CreatePage(p *domain.CMSPage) error {
	_, err := r.db.Exec(`
		INSERT INTO cms_pages(id, title, slug, meta_description, keywords, content, seo_score, status)
		VALUES (?,?,?,?,?,?,?,?)`,
		p.ID, p.Title, p.Slug, p.MetaDescription, p.Keywords, p.Content, p.SEOScore, p.Status)
	return err
}

func (r *ContentRepo) UpdatePage(p *domain.CMSPage) error {
	_, err := r.db.Exec(`
		UPDATE cms_pages
		SET title=?, slug=?, meta_description=?, keywords=?, content=?, seo_score=?, status=?, updated_at=?
		WHERE id=?`,
		p.Title, p.Slug, p.MetaDescription, p.Keywords, p.Content, p.SEOScore, p.Status, p.UpdatedAt, p.ID)
	return err
}
