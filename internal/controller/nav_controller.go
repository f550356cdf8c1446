package controller

import (
	"hulunote-be/internal/dto"
	"hulunote-be/internal/pkg/serverutils"
	"hulunote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INavController interface {
	RegisterRoutes(r fiber.Router)
}

type navController struct {
	navService service.INavService
}

func NewNavController(navService service.INavService) INavController {
	return &navController{
		navService: navService,
	}
}

func (c *navController) RegisterRoutes(r fiber.Router) {
	r.Post("/create-or-update-nav", c.CreateOrUpdate)
	// Legacy alias kept for older clients.
	r.Post("/new-hulunote-navs-uuid-v2", c.CreateOrUpdate)
	r.Post("/get-note-navs", c.GetNoteNavs)
	r.Post("/get-nav-list-by-id", c.GetNoteNavs)
	r.Post("/get-all-nav-by-page", c.GetAllByPage)
	r.Post("/get-all-navs", c.GetAll)
}

func (c *navController) CreateOrUpdate(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.CreateOrUpdateNavRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.navService.CreateOrUpdateNav(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *navController) GetNoteNavs(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.GetNavsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.navService.GetNoteNavs(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *navController) GetAllByPage(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.GetAllNavsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.navService.GetAllNavsByPage(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *navController) GetAll(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.GetAllNavsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.navService.GetAllNavs(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
