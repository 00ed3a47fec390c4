package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/listing"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// listParams reads the shared list-screen query contract: q, sortBy,
// sortDir plus the screen's filter keys (sentinel "all" means unfiltered).
func listParams(c *fiber.Ctx, filterKeys ...string) listing.Params {
	filters := make(map[string]string, len(filterKeys))
	for _, k := range filterKeys {
		filters[k] = c.Query(k, listing.All)
	}
	return listing.Params{
		Search:  c.Query("q"),
		Filters: filters,
		SortBy:  c.Query("sortBy"),
		Desc:    c.Query("sortDir") == "desc",
	}
}
