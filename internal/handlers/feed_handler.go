package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prayershare/configs"
	"prayershare/dto"
	"prayershare/internal/middleware"
	"prayershare/model"
	"prayershare/services"
)

type FeedHandler struct {
	Sources  []services.PostSource
	Profiles services.ProfileResolver
	PageSize int64 // default page size when the request names none
}

// Feed godoc
// @Summary Paginated feed of requests and testimonies
// @Tags feed
// @Produce json
// @Param kind query string false "req, tes or all"
// @Param author query string false "restrict to one author"
// @Param mine query bool false "only the viewer's posts"
// @Param cursor query string false "resume after this cursor"
// @Param limit query int false "page size"
// @Router /feed [get]
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	viewerID, _ := middleware.UserIDFrom(c)

	var kinds []model.Kind
	switch kindQ := c.Query("kind", "all"); kindQ {
	case "all", "":
	default:
		k, err := model.ParseKind(kindQ)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "kind must be req, tes or all"})
		}
		kinds = []model.Kind{k}
	}

	author := c.Query("author")
	mine := c.QueryBool("mine", false)
	if mine && viewerID == "" {
		return fiber.ErrUnauthorized
	}

	// Anonymous posts show on the home feed and to their owners, never
	// on other profile views.
	includeAnonymous := author == "" && !mine
	if mine || (author != "" && author == viewerID) {
		includeAnonymous = true
	}

	defLimit := h.PageSize
	if defLimit <= 0 {
		defLimit = configs.DefaultFeedLimit
	}
	limit := int64(c.QueryInt("limit", int(defLimit)))
	if limit <= 0 {
		limit = defLimit
	}
	if limit > configs.MaxFeedLimit {
		limit = configs.MaxFeedLimit
	}

	agg := services.NewFeedAggregator(h.Sources, h.Profiles, viewerID, services.FeedFilter{
		Kinds:            kinds,
		AuthorID:         author,
		OnlyViewer:       mine,
		IncludeAnonymous: includeAnonymous,
	}, limit)

	if cur := c.Query("cursor"); cur != "" {
		if err := agg.StartAt(cur); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid cursor"})
		}
	}

	page, err := agg.FetchPage(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewFeedResponse(page, viewerID))
}
