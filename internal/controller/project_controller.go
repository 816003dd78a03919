package controller

import (
	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
}

type projectController struct {
	projectService service.IProjectService
	authGuard      fiber.Handler
}

func NewProjectController(projectService service.IProjectService, authGuard fiber.Handler) IProjectController {
	return &projectController{
		projectService: projectService,
		authGuard:      authGuard,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/project/v1")
	h.Use(c.authGuard)

	h.Get("", c.list)
	h.Get(":id", c.show)
	h.Get(":id/subprojects", c.listSubProjects)

	h.Post("", serverutils.AdminOnly, c.create)
	h.Put(":id", serverutils.AdminOnly, c.update)
	h.Delete(":id", serverutils.AdminOnly, c.delete)

	sp := r.Group("/subproject/v1")
	sp.Use(c.authGuard)
	sp.Post("", serverutils.AdminOnly, c.createSubProject)
	sp.Put(":id", serverutils.AdminOnly, c.updateSubProject)
	sp.Delete(":id", serverutils.AdminOnly, c.deleteSubProject)
	sp.Post(":id/members", serverutils.AdminOnly, c.assignMember)
	sp.Delete(":id/members/:userId", serverutils.AdminOnly, c.removeMember)
}

func (c *projectController) list(ctx *fiber.Ctx) error {
	res, err := c.projectService.ListProjects(ctx.Context())
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list projects", res))
}

func (c *projectController) show(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.projectService.GetProject(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show project", res))
}

func (c *projectController) listSubProjects(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.projectService.ListSubProjects(ctx.Context(), id, identity)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list subprojects", res))
}

func (c *projectController) create(ctx *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.CreateProject(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create project", res))
}

func (c *projectController) update(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.UpdateProject(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update project", res))
}

func (c *projectController) delete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.projectService.DeleteProject(ctx.Context(), id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete project", nil))
}

func (c *projectController) createSubProject(ctx *fiber.Ctx) error {
	var req dto.CreateSubProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.projectService.CreateSubProject(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create subproject", res))
}

func (c *projectController) updateSubProject(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSubProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	res, err := c.projectService.UpdateSubProject(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update subproject", res))
}

func (c *projectController) deleteSubProject(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.projectService.DeleteSubProject(ctx.Context(), id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete subproject", nil))
}

func (c *projectController) assignMember(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AssignMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.projectService.AssignMember(ctx.Context(), id, req.UserId); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success assign member", nil))
}

func (c *projectController) removeMember(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	userId, err := parseUUIDParam(ctx, "userId")
	if err != nil {
		return err
	}

	if err := c.projectService.RemoveMember(ctx.Context(), id, userId); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove member", nil))
}
