package handler

import (
	"net/http"

	"github.com/botfarm-io/botfarm/internal/modules/serializer"
	"github.com/botfarm-io/botfarm/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project by name. Idempotent: an existing project with the same name is returned unchanged.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

type ListProjectsReq struct {
	Limit int `form:"limit,default=100" json:"limit" binding:"min=1"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List up to limit projects in store order
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			limit	query	integer	false	"Maximum number of projects to return, default 100"
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := ListProjectsReq{Limit: 100}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	projects, err := h.svc.List(c.Request.Context(), req.Limit)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get a project by name
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			name	path	string	true	"Project name"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		422	{object}	serializer.Response
//	@Router			/projects/{name} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

type UpdateProjectReq struct {
	Name *string `form:"name" json:"name"`
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Partially update a project by name; absent fields are left untouched
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			name	path	string						true	"Project name"
//	@Param			payload	body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		422	{object}	serializer.Response
//	@Router			/projects/{name} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	req := UpdateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), c.Param("name"), service.ProjectPatch{
		Name: req.Name,
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project by name; referencing users are detached, not deleted
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			name	path	string	true	"Project name"
//	@Success		204
//	@Failure		422	{object}	serializer.Response
//	@Router			/projects/{name} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
