package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AuditController struct {
	reader    AuditReader
	scheduler AuditScheduler
}

// NewAuditController creates the audit endpoints. scheduler may be nil when
// the task queue is disabled.
func NewAuditController(reader AuditReader, scheduler AuditScheduler) *AuditController {
	return &AuditController{reader: reader, scheduler: scheduler}
}

// GetAuditEvents returns the most recent audit events as JSON
// GET /audit/events?limit=50&type=delete
// GET /audit/events?entity_type=author&entity_id=1
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	if c.Query("entity_type") != "" || c.Query("entity_id") != "" {
		ac.getEntityHistory(c)
		return
	}

	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondBadRequest(c, "invalid limit")
			return
		}
		limit = min(n, maxAuditLimit)
	}

	eventType := entities.AuditEventType(c.Query("type"))
	switch eventType {
	case "", entities.AuditEventCreate, entities.AuditEventUpdate, entities.AuditEventDelete:
	default:
		respondBadRequest(c, "invalid type")
		return
	}

	events, total, err := ac.reader.GetEvents(c.Request.Context(), eventType, limit)
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"limit":        limit,
		"total_events": total,
	})
}

func (ac *AuditController) getEntityHistory(c *gin.Context) {
	entityType := c.Query("entity_type")
	switch entityType {
	case "author", "book":
	default:
		respondBadRequest(c, "invalid entity_type")
		return
	}

	entityID, err := strconv.ParseUint(c.Query("entity_id"), 10, strconv.IntSize)
	if err != nil {
		respondBadRequest(c, "invalid entity_id")
		return
	}

	events, err := ac.reader.GetEventsForEntity(c.Request.Context(), entityType, uint(entityID))
	if err != nil {
		respondInternalError(c, err, "list entity audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"total_events": len(events),
	})
}

// RunCleanup queues an audit retention cleanup outside the schedule
// POST /audit/cleanup
func (ac *AuditController) RunCleanup(c *gin.Context) {
	if ac.scheduler == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "audit cleanup is not scheduled", Code: CodeUnavailable})
		return
	}

	if err := ac.scheduler.RunNow(); err != nil {
		respondInternalError(c, err, "enqueue audit cleanup")
		return
	}

	loggerFrom(c).Info("audit cleanup enqueued on request")
	c.JSON(http.StatusAccepted, SuccessResponse{Message: "audit cleanup enqueued"})
}
