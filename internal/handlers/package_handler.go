package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucpackage "github.com/BruksfildServices01/salon-scheduler/internal/usecase/servicepackage"
)

// ======================================================
// HANDLER
// ======================================================

type PackageHandler struct {
	db       *gorm.DB
	purchase *ucpackage.Purchase
}

func NewPackageHandler(db *gorm.DB, purchase *ucpackage.Purchase) *PackageHandler {
	return &PackageHandler{
		db:       db,
		purchase: purchase,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PurchasePackageRequest struct {
	ClientID        uint   `json:"client_id" binding:"required"`
	ServiceType     string `json:"service_type" binding:"required"`
	TotalSessions   int    `json:"total_sessions" binding:"required"`
	ExpiryDate      string `json:"expiry_date" binding:"required"`
	PackageCost     string `json:"package_cost" binding:"required"`
	MinimumInterval int    `json:"minimum_interval"`
}

// ======================================================
// PURCHASE
// ======================================================

func (h *PackageHandler) Purchase(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PurchasePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cost, err := decimal.NewFromString(req.PackageCost)
	if err != nil {
		httperr.BadRequest(c, "invalid_package_cost", "Valor do pacote inválido.")
		return
	}

	out, err := h.purchase.Execute(c.Request.Context(), ucpackage.PurchaseInput{
		ClientID:        req.ClientID,
		RequestedBy:     userID,
		ServiceType:     req.ServiceType,
		TotalSessions:   req.TotalSessions,
		ExpiryDate:      req.ExpiryDate,
		PackageCost:     cost,
		MinimumInterval: req.MinimumInterval,
	})
	if err != nil {
		if httperr.WriteDomain(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_purchase_package", "Erro ao registrar pacote.")
		return
	}

	httpresp.Created(c, gin.H{
		"package":     out.Package,
		"payment_url": out.PaymentURL,
	})
}

// ======================================================
// LIST BY CLIENT
// ======================================================

func (h *PackageHandler) ListByClient(c *gin.Context) {
	clientID64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
		return
	}

	var packages []models.ServicePackage
	if err := h.db.
		Where("client_id = ?", uint(clientID64)).
		Order("purchase_date DESC").
		Find(&packages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_packages", "Erro ao listar pacotes.")
		return
	}

	httpresp.List(c, packages)
}
