package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
)

// ContentHandler serves the blog and CMS screens plus the shared SEO scoring
// endpoint.
type ContentHandler struct {
	Content *services.ContentService
}

// GET /api/v1/posts
func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.Content.ListPosts()
	if err != nil {
		applog.Error(c, "posts.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load posts")
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// POST /api/v1/posts
func (h *ContentHandler) CreatePost(c *fiber.Ctx) error {
	var p domain.BlogPost
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if err := h.Content.CreatePost(&p); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "posts.create.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not create post")
	}
	applog.Audit(c, "posts.create", map[string]any{"post": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/v1/posts/:id
func (h *ContentHandler) UpdatePost(c *fiber.Ctx) error {
	var p domain.BlogPost
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	p.ID = c.Params("id")
	if err := h.Content.UpdatePost(&p); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "posts.update.fail", err, map[string]any{"post": p.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not update post")
	}
	applog.Audit(c, "posts.update", map[string]any{"post": p.ID})
	return c.JSON(p)
}

// DELETE /api/v1/posts/:id
func (h *ContentHandler) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Content.DeletePost(id); err != nil {
		applog.Error(c, "posts.delete.fail", err, map[string]any{"post": id})
		return jsonError(c, fiber.StatusBadRequest, "could not delete post")
	}
	applog.Audit(c, "posts.delete", map[string]any{"post": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/pages
func (h *ContentHandler) ListPages(c *fiber.Ctx) error {
	pages, err := h.Content.ListPages()
	if err != nil {
		applog.Error(c, "pages.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load pages")
	}
	return c.JSON(fiber.Map{"pages": pages})
}

// POST /api/v1/pages
func (h *ContentHandler) CreatePage(c *fiber.Ctx) error {
	var p domain.CMSPage
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	if err := h.Content.CreatePage(&p); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "pages.create.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not create page")
	}
	applog.Audit(c, "pages.create", map[string]any{"page": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/v1/pages/:id
func (h *ContentHandler) UpdatePage(c *fiber.Ctx) error {
	var p domain.CMSPage
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	p.ID = c.Params("id")
	if err := h.Content.UpdatePage(&p); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		applog.Error(c, "pages.update.fail", err, map[string]any{"page": p.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not update page")
	}
	applog.Audit(c, "pages.update", map[string]any{"page": p.ID})
	return c.JSON(p)
}

type seoRequest struct {
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
	Content         string `json:"content"`
	IncludeContent  bool   `json:"includeContent"`
}

// POST /api/v1/seo/score — live scoring for the product/blog/CMS editors.
func (h *ContentHandler) ScoreSEO(c *fiber.Ctx) error {
	var req seoRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed body")
	}
	overall := services.PageScore(req.Title, req.MetaDescription, req.Keywords)
	if req.IncludeContent {
		overall = services.PostScore(req.Title, req.MetaDescription, req.Keywords, req.Content)
	}
	return c.JSON(fiber.Map{"overall": overall})
}
