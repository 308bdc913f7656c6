package contact

import (
	"html"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"gitahub/pkg/models"
)

const (
	maxName    = 100
	maxEmail   = 255
	maxMessage = 5000
)

type Handler struct {
	Repo      *Repo
	Forwarder Forwarder // nil disables forwarding
	Logger    *zap.Logger

	policy *bluemonday.Policy
}

func NewHandler(repo *Repo, fwd Forwarder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Repo:      repo,
		Forwarder: fwd,
		Logger:    logger,
		policy:    bluemonday.StrictPolicy(),
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

type submitReq struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// clean strips markup and surrounding whitespace from user input. The
// policy entity-escapes what it keeps, so the result is unescaped back to
// plain text before it is validated and stored.
func (h *Handler) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(h.policy.Sanitize(strings.TrimSpace(s))))
}

// Validate checks a cleaned submission and returns a user-facing error.
func Validate(name, email, message string) string {
	switch {
	case name == "" || utf8.RuneCountInString(name) > maxName:
		return "name must be 1-100 chars"
	case !strings.Contains(email, "@") || len(email) > maxEmail:
		return "invalid email"
	case message == "" || utf8.RuneCountInString(message) > maxMessage:
		return "message must be 1-5000 chars"
	}
	return ""
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      h.clean(req.Name),
		Email:     strings.ToLower(h.clean(req.Email)),
		Message:   h.clean(req.Message),
		CreatedAt: time.Now().UTC(),
	}
	if problem := Validate(msg.Name, msg.Email, msg.Message); problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": problem})
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.Create(ctx, msg); err != nil {
		h.Logger.Error("store contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	if h.Forwarder != nil {
		if err := h.Forwarder.Forward(ctx, msg); err != nil {
			h.Logger.Warn("forward contact message", zap.String("id", msg.ID), zap.Error(err))
		} else if err := h.Repo.MarkForwarded(ctx, msg.ID); err != nil {
			h.Logger.Warn("mark contact message forwarded", zap.String("id", msg.ID), zap.Error(err))
		} else {
			msg.Forwarded = true
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        msg.ID,
		"forwarded": msg.Forwarded,
	})
}
