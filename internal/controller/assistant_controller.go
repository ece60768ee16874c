package controller

import (
	"persona-assistant-be/internal/dto"
	"persona-assistant-be/internal/pkg/serverutils"
	"persona-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	ListRoles(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

// RegisterRoutes exposes the visitor-facing surface. No auth on purpose:
// the whole point is that portfolio visitors can chat anonymously.
func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("chat", c.Chat)
	h.Get("roles", c.ListRoles)
	h.Get("session/:id", c.GetSession)
	h.Delete("session/:id", c.DeleteSession)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.assistantService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat exchange", res))
}

func (c *assistantController) ListRoles(ctx *fiber.Ctx) error {
	res := c.assistantService.ListRoles(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success list roles", res))
}

func (c *assistantController) GetSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	res, err := c.assistantService.GetSession(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	if res == nil {
		// An unseen session key is not an error, just an empty record.
		res = &dto.SessionResponse{SessionID: sessionID, History: []dto.TurnPayload{}}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	if err := c.assistantService.DeleteSession(ctx.Context(), sessionID); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
