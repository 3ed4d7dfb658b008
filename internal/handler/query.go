package handler

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context, defaultLimit, maxLimit int) int {
	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if maxLimit > 0 && limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}

// getParamIndex parses a non-negative path parameter.
func getParamIndex(name string, c *gin.Context) (int, bool) {
	value := c.Param(name)
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		slog.Warn("invalid path parameter", "param", name, "value", value)
		return 0, false
	}
	return i, true
}
