package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"algonest_webclient/internal/model"
	"algonest_webclient/internal/service"
	"algonest_webclient/internal/validation"
	"algonest_webclient/internal/withdrawal"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

const maxProofSize = 10 << 20

type fundsRoutes struct {
	*handler
}

func NewFundsRoutes(g *gin.RouterGroup, h *handler) {
	r := &fundsRoutes{handler: h}
	{
		g.GET("/wallet", r.wallet)
		g.POST("/wallet", r.saveWallet)
		g.POST("/wallet/validate", r.validateWallet)
		g.GET("/recharge", r.rechargePage)
		g.POST("/recharge", r.recharge)
		g.GET("/withdraw", r.withdrawPage)
		g.GET("/withdraw/preview", r.withdrawPreview)
		g.POST("/withdraw", r.withdraw)
	}
}

func (r *fundsRoutes) wallet(c *gin.Context) {
	snap, err := r.machine(c, "wallet").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Wallet(ctx)
	})
	r.renderPage(c, "wallet", snap, err)
}

func (r *fundsRoutes) saveWallet(c *gin.Context) {
	var binding model.WalletBinding
	if !r.bindForm(c, &binding) {
		return
	}

	snap, err := r.submit(c, "wallet", func(ctx context.Context) (string, error) {
		return r.svc.SaveWallet(ctx, binding)
	})
	r.renderOutcome(c, snap, err)
}

func (r *fundsRoutes) validateWallet(c *gin.Context) {
	var binding model.WalletBinding
	if !r.bindForm(c, &binding) {
		return
	}

	if err := r.svc.CheckAddress(binding.CoinName, binding.WalletAddress); err != nil {
		r.renderError(c, validation.Errors{"wallet_address": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (r *fundsRoutes) rechargePage(c *gin.Context) {
	bar := navFor(c)
	p := staticPage("recharge", r.svc.RechargeInfo())
	p.Nav = &bar
	c.JSON(http.StatusOK, p)
}

func (r *fundsRoutes) recharge(c *gin.Context) {
	log := logger.Logger()

	var form validation.RechargeForm
	if !r.bindForm(c, &form) {
		return
	}

	var (
		proofName string
		proof     []byte
	)
	file, hdr, err := c.Request.FormFile("proof")
	switch {
	case err == nil:
		defer file.Close()
		proof, err = io.ReadAll(io.LimitReader(file, maxProofSize+1))
		if err != nil {
			log.Error("failed to read proof of payment", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if len(proof) > maxProofSize {
			r.renderError(c, validation.Errors{"proof": "Proof of payment must be 10MB or smaller."})
			return
		}
		proofName = hdr.Filename
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		log.Error("failed to read multipart form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	snap, err := r.submit(c, "recharge", func(ctx context.Context) (string, error) {
		return r.svc.Invest(ctx, form, proofName, proof)
	})
	if err == nil {
		c.JSON(http.StatusOK, outcome{Status: snap.Status, StatusType: snap.StatusType, Redirect: "/dashboard"})
		return
	}
	r.renderOutcome(c, snap, err)
}

func (r *fundsRoutes) withdrawPage(c *gin.Context) {
	snap, err := r.machine(c, "withdraw").Load(c.Request.Context(), func(ctx context.Context) (any, error) {
		return r.svc.Account(ctx)
	})
	r.renderPage(c, "withdraw", snap, err)
}

func (r *fundsRoutes) withdrawPreview(c *gin.Context) {
	amount, err := validation.ParseAmount(c.Query("amount"))
	if err != nil {
		amount = 0
	}
	c.JSON(http.StatusOK, gin.H{"actual_arrival": r.svc.Preview(amount)})
}

func (r *fundsRoutes) withdraw(c *gin.Context) {
	log := logger.Logger()

	var form validation.WithdrawForm
	if !r.bindForm(c, &form) {
		return
	}

	var account *service.WithdrawView
	snap, err := r.submit(c, "withdraw", func(ctx context.Context) (string, error) {
		msg, err := r.svc.Withdraw(ctx, form)
		if err != nil {
			return "", err
		}

		// The balance changed server side.
		account, err = r.svc.Account(ctx)
		if err != nil {
			log.Warn("failed to refresh balance after withdrawal", zap.Error(err))
		}
		return msg, nil
	})

	var check *withdrawal.CheckError
	if errors.As(err, &check) {
		r.machine(c, "withdraw").SetStatus(check.Type, check.Message)
	}
	if err != nil {
		r.renderOutcome(c, snap, err)
		return
	}

	out := outcome{Status: snap.Status, StatusType: snap.StatusType}
	if account != nil {
		out.Data = account
	}
	c.JSON(http.StatusOK, out)
}
