package handler

import (
	"net/http"
	"time"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"github.com/botfarm-io/botfarm/internal/modules/serializer"
	"github.com/botfarm-io/botfarm/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

type CreateUserReq struct {
	Login       string  `form:"login" json:"login" binding:"required"`
	Password    string  `form:"password" json:"password" binding:"required"`
	ProjectName *string `form:"project_name" json:"project_name"`
	Env         string  `form:"env" json:"env" binding:"required,oneof=prod preprod stage"`
	Domain      string  `form:"domain" json:"domain" binding:"required,oneof=canary regular"`
}

// CreateUser godoc
//
//	@Summary		Create user
//	@Description	Create a bot account; the password is stored as a digest and the account starts unlocked
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateUserReq	true	"CreateUser payload"
//	@Success		201	{object}	serializer.Response{data=model.User}
//	@Failure		422	{object}	serializer.Response
//	@Router			/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	req := CreateUserReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.Create(c.Request.Context(), service.CreateUserInput{
		Login:       req.Login,
		Password:    req.Password,
		ProjectName: req.ProjectName,
		Env:         model.EnvType(req.Env),
		Domain:      model.DomainType(req.Domain),
	})
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: user})
}

type GetUsersReq struct {
	Limit       int     `form:"limit,default=100" json:"limit" binding:"min=1"`
	ProjectName *string `form:"project_name" json:"project_name"`
	Domain      *string `form:"domain" json:"domain" binding:"omitempty,oneof=canary regular"`
	Env         *string `form:"env" json:"env" binding:"omitempty,oneof=prod preprod stage"`
}

// GetUsers godoc
//
//	@Summary		List users
//	@Description	List up to limit users; project_name, domain and env filters are ANDed
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			limit			query	integer	false	"Maximum number of users to return, default 100"
//	@Param			project_name	query	string	false	"Only users of this project"
//	@Param			domain			query	string	false	"Only users with this domain (canary, regular)"
//	@Param			env				query	string	false	"Only users with this env (prod, preprod, stage)"
//	@Success		200	{object}	serializer.Response{data=[]model.User}
//	@Failure		422	{object}	serializer.Response
//	@Router			/users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	req := GetUsersReq{Limit: 100}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.ListUsersInput{
		Limit:       req.Limit,
		ProjectName: req.ProjectName,
	}
	if req.Domain != nil {
		d := model.DomainType(*req.Domain)
		in.Domain = &d
	}
	if req.Env != nil {
		e := model.EnvType(*req.Env)
		in.Env = &e
	}

	users, err := h.svc.List(c.Request.Context(), in)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: users})
}

type GetUserReq struct {
	Lock bool `form:"lock,default=false" json:"lock"`
}

// GetUser godoc
//
//	@Summary		Get user
//	@Description	Get a user by login. A locked user is refused with 423. With lock=true the advisory lock is acquired and the locked record returned.
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			login	path	string	true	"User login"
//	@Param			lock	query	boolean	false	"Acquire the advisory lock while fetching"
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Failure		422	{object}	serializer.Response
//	@Failure		423	{object}	serializer.Response
//	@Router			/users/{login} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	req := GetUserReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.Get(c.Request.Context(), c.Param("login"), req.Lock)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: user})
}

type UpdateUserReq struct {
	Password    *string    `form:"password" json:"password"`
	ProjectName *string    `form:"project_name" json:"project_name"`
	Env         *string    `form:"env" json:"env" binding:"omitempty,oneof=prod preprod stage"`
	Domain      *string    `form:"domain" json:"domain" binding:"omitempty,oneof=canary regular"`
	Locktime    *time.Time `form:"locktime" json:"locktime"`
}

// UpdateUser godoc
//
//	@Summary		Update user
//	@Description	Partially update a user by login; absent fields are left untouched. An empty project_name detaches the user, and locktime may be set or cleared directly.
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			login	path	string					true	"User login"
//	@Param			payload	body	handler.UpdateUserReq	true	"UpdateUser payload"
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Failure		422	{object}	serializer.Response
//	@Router			/users/{login} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	req := UpdateUserReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	patch := service.UserPatch{
		Password:    req.Password,
		ProjectName: req.ProjectName,
		Locktime:    req.Locktime,
	}
	if req.Env != nil {
		e := model.EnvType(*req.Env)
		patch.Env = &e
	}
	if req.Domain != nil {
		d := model.DomainType(*req.Domain)
		patch.Domain = &d
	}

	user, err := h.svc.Update(c.Request.Context(), c.Param("login"), patch)
	if err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: user})
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Description	Delete a user by login; an active advisory lock does not block deletion
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			login	path	string	true	"User login"
//	@Success		204
//	@Failure		422	{object}	serializer.Response
//	@Router			/users/{login} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("login")); err != nil {
		c.JSON(serializer.FromError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
