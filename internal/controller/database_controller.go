package controller

import (
	"hulunote-be/internal/dto"
	"hulunote-be/internal/pkg/serverutils"
	"hulunote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDatabaseController interface {
	RegisterRoutes(r fiber.Router)
}

type databaseController struct {
	databaseService service.IDatabaseService
}

func NewDatabaseController(databaseService service.IDatabaseService) IDatabaseController {
	return &databaseController{
		databaseService: databaseService,
	}
}

// The hulunote wire protocol is POST-only with verb-style paths; clients
// depend on these exact routes.
func (c *databaseController) RegisterRoutes(r fiber.Router) {
	r.Post("/new-database", c.Create)
	r.Post("/get-database-list", c.GetList)
	r.Post("/update-database", c.Update)
	r.Post("/delete-database", c.Delete)
}

func (c *databaseController) Create(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.CreateDatabaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.databaseService.Create(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *databaseController) GetList(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	res, err := c.databaseService.GetList(ctx.Context(), accountId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *databaseController) Update(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.UpdateDatabaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.databaseService.Update(ctx.Context(), accountId, &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *databaseController) Delete(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.DeleteDatabaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.databaseService.Delete(ctx.Context(), accountId, &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Database deleted successfully"})
}
