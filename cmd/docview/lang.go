package main

import (
	"maps"

	"github.com/rise-and-shine/docview/filestore"
	"github.com/rise-and-shine/docview/internal/files"
	"github.com/rise-and-shine/docview/token"
	"github.com/rise-and-shine/docview/val"
)

func translations() map[string]map[string]string {
	m := map[string]map[string]string{
		"en": {
			"ROUTER_ERROR":               "Route not found or method not allowed",
			"INVALID_QUERY_PARAMS":       "Invalid query parameters",
			"INVALID_PATH_PARAMS":        "Invalid path parameters",
			"INVALID_JSON_BODY":          "Invalid request body",
			val.CodeValidationFailed:     "Validation failed",
			token.CodeExpiredToken:       "Token has expired",
			token.CodeInvalidToken:       "Invalid token",
			filestore.CodeObjectNotFound: "File content not found",
		},
		"zh": {
			"ROUTER_ERROR":               "路由不存在或方法不允许",
			"INVALID_QUERY_PARAMS":       "查询参数无效",
			"INVALID_PATH_PARAMS":        "路径参数无效",
			"INVALID_JSON_BODY":          "请求体无效",
			val.CodeValidationFailed:     "参数校验失败",
			token.CodeExpiredToken:       "令牌已过期",
			token.CodeInvalidToken:       "令牌无效",
			filestore.CodeObjectNotFound: "文件内容不存在",
		},
	}

	for lang, msgs := range files.Translations() {
		maps.Copy(m[lang], msgs)
	}
	return m
}
