package controller

import (
	"io"

	"hulunote-be/internal/dto"
	"hulunote-be/internal/pkg/apperror"
	"hulunote-be/internal/pkg/serverutils"
	"hulunote-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImportController interface {
	RegisterRoutes(r fiber.Router)
}

type importController struct {
	importService service.IImportService
}

func NewImportController(importService service.IImportService) IImportController {
	return &importController{
		importService: importService,
	}
}

func (c *importController) RegisterRoutes(r fiber.Router) {
	r.Post("/import-notes", c.ImportNotes)
}

// ImportNotes accepts a multipart form: `database-id` / `database-name`
// value fields plus any number of file fields (JSON documents or ZIP
// archives of them).
func (c *importController) ImportNotes(ctx *fiber.Ctx) error {
	accountId := serverutils.AccountId(ctx)

	form, err := ctx.MultipartForm()
	if err != nil {
		return apperror.BadRequest("Multipart error: %v", err)
	}

	ref := dto.DatabaseRef{}
	if v, ok := form.Value["database-id"]; ok && len(v) > 0 {
		ref.DatabaseId = v[0]
	}
	if v, ok := form.Value["database-name"]; ok && len(v) > 0 {
		ref.DatabaseName = v[0]
	}

	var files []service.UploadedFile
	for _, headers := range form.File {
		for _, header := range headers {
			f, err := header.Open()
			if err != nil {
				return apperror.BadRequest("Failed to read file %s: %v", header.Filename, err)
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return apperror.BadRequest("Failed to read file %s: %v", header.Filename, err)
			}
			files = append(files, service.UploadedFile{Name: header.Filename, Data: data})
		}
	}

	res, err := c.importService.ImportNotes(ctx.Context(), accountId, ref, files)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
