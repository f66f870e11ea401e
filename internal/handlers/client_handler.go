package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appt "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucclient "github.com/BruksfildServices01/salon-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	db      *gorm.DB
	repo    appt.Repository
	loyalty *ucclient.GetLoyaltySummary
}

func NewClientHandler(
	db *gorm.DB,
	repo appt.Repository,
	loyalty *ucclient.GetLoyaltySummary,
) *ClientHandler {
	return &ClientHandler{
		db:      db,
		repo:    repo,
		loyalty: loyalty,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email"`
	Notes            string `json:"notes"`
	PreferredService string `json:"preferred_service"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.Client{}).Where("phone = ?", req.Phone).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "client_already_exists", "Telefone já cadastrado.")
		return
	}

	client := models.Client{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Notes:            req.Notes,
		PreferredService: req.PreferredService,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// LIST CLIENTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// LOYALTY SUMMARY
// ======================================================

func (h *ClientHandler) LoyaltySummary(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return
	}

	summary, err := h.loyalty.Execute(c.Request.Context(), uint(id64))
	if err != nil {
		if httperr.WriteDomain(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_loyalty_summary", "Erro ao consultar fidelidade.")
		return
	}

	httpresp.OK(c, summary)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return
	}

	history, err := h.repo.ListHistoryForClient(c.Request.Context(), uint(id64))
	if err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, history)
}
