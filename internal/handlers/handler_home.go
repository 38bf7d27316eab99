package handlers

import (
	"net/http"

	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Workly CRM API",
		"version": "v1",
		"health":  "/health",
	})
}

// noRoute answers unknown paths with the standard error body.
func noRoute(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "route not found"})
}
