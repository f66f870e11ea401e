package httperr

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/servicepackage"
)

// WriteDomain traduz os erros tipados do domínio para a resposta JSON
// da API. Devolve false quando o erro não é de domínio (o handler trata
// como not_found/internal).
func WriteDomain(c *gin.Context, err error) bool {

	var ve *appointment.ValidationError
	if errors.As(err, &ve) {
		WriteDetails(c, 400, "validation_error", ve.Message, gin.H{
			"field": ve.Field,
		})
		return true
	}

	var ce *appointment.ConflictError
	if errors.As(err, &ce) {
		WriteDetails(c, 409, "time_conflict",
			"time slot is already booked", gin.H{
				"blocking_start": ce.BlockingStart.Format(time.RFC3339),
			})
		return true
	}

	var te *appointment.InvalidTransitionError
	if errors.As(err, &te) {
		WriteDetails(c, 422, "invalid_transition", te.Error(), gin.H{
			"from":    te.From,
			"to":      te.To,
			"allowed": te.Allowed,
		})
		return true
	}

	var pu *servicepackage.PackageUnavailableError
	if errors.As(err, &pu) {
		WriteDetails(c, 422, "package_unavailable", pu.Error(), gin.H{
			"reason": pu.Reason,
		})
		return true
	}

	var pv *servicepackage.PackageValidationError
	if errors.As(err, &pv) {
		WriteDetails(c, 400, "package_validation_error", pv.Message, gin.H{
			"field": pv.Field,
		})
		return true
	}

	var ip *loyalty.InsufficientPointsError
	if errors.As(err, &ip) {
		WriteDetails(c, 422, "insufficient_points", ip.Error(), gin.H{
			"requested": ip.Requested,
			"balance":   ip.Balance,
		})
		return true
	}

	var be BusinessError
	if errors.As(err, &be) {
		BadRequest(c, be.Code, be.Code)
		return true
	}

	return false
}
