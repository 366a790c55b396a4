package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the generic JSON body for success payloads.
type Response map[string]interface{}

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, data)
}
