package gql

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/wichananm65/social-backend/internal/interface/presenter"
	"github.com/wichananm65/social-backend/internal/usecase"
)

// request accepts the document under either "query" or "mutation".
type request struct {
	Query         string         `json:"query"`
	Mutation      string         `json:"mutation"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

func (r request) document() string {
	if strings.TrimSpace(r.Query) != "" {
		return r.Query
	}
	return r.Mutation
}

type Handler struct {
	schema graphql.Schema
	logger *zap.Logger
}

func NewHandler(f *usecase.Facade, depth int, logger *zap.Logger) (*Handler, error) {
	schema, err := NewSchema(f, depth)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{schema: schema, logger: logger}, nil
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/graphql", h.execute)
}

func (h *Handler) execute(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return presenter.BadBody(c, err)
	}
	doc := req.document()
	if strings.TrimSpace(doc) == "" {
		return presenter.Message(c, fiber.StatusBadRequest, "query or mutation is required")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  doc,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})
	if result.HasErrors() {
		h.logger.Debug("graphql errors", zap.Int("count", len(result.Errors)), zap.String("first", result.Errors[0].Message))
	}
	return c.JSON(result)
}
