package controller

import (
	"hulunote-be/internal/dto"
	"hulunote-be/internal/pkg/serverutils"
	"hulunote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Post("/new-note", c.Create)
	r.Post("/get-note-list", c.GetList)
	r.Post("/get-all-note-list", c.GetAllList)
	r.Post("/update-hulunote-note", c.Update)
	r.Post("/get-shortcuts-note-list", c.GetShortcutsList)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) GetList(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.GetNoteListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.noteService.GetList(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) GetAllList(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.GetNoteListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.noteService.GetAllList(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.noteService.Update(ctx.Context(), accountId, &req); err != nil {
		return err
	}
	return ctx.JSON(dto.UpdateNoteResponse{Success: true})
}

func (c *noteController) GetShortcutsList(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	var req dto.GetNoteListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.noteService.GetShortcutsList(ctx.Context(), accountId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
