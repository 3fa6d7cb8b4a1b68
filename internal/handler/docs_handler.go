package handler

import (
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

const docsPath = "/swagger"

// OpenAPIの定義を読み込んで表示するだけのページ（JSはCDN）
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>CornerStore API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({ url: "` + docsPath + `/openapi.json", dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>`

var pathParamPattern = regexp.MustCompile(`:([A-Za-z0-9_]+)`)

// GET / はドキュメントへリダイレクト。ドキュメント自体は開発時だけ出す
type DocsHandler struct {
	enabled bool
}

func NewDocsHandler(enabled bool) *DocsHandler {
	return &DocsHandler{enabled: enabled}
}

func (h *DocsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.redirect)
	if !h.enabled {
		return
	}
	e.GET(docsPath, h.ui)
	e.GET(docsPath+"/openapi.json", h.openAPI)
}

func (h *DocsHandler) redirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, docsPath)
}

func (h *DocsHandler) ui(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, swaggerUIPage)
}

func (h *DocsHandler) openAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, BuildOpenAPI(c.Echo().Routes()))
}

// BuildOpenAPI はechoのルート表から最小限のOpenAPI 3定義を作る。
// "/" とドキュメント自身は含めない。
func BuildOpenAPI(routes []*echo.Route) map[string]interface{} {
	paths := map[string]map[string]interface{}{}

	sorted := make([]*echo.Route, len(routes))
	copy(sorted, routes)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Method < sorted[j].Method
	})

	for _, r := range sorted {
		if r.Path == "/" || strings.HasPrefix(r.Path, docsPath) {
			continue
		}
		method := strings.ToLower(r.Method)
		if !isDocumentedMethod(method) {
			continue
		}

		path := pathParamPattern.ReplaceAllString(r.Path, "{$1}")
		op := map[string]interface{}{
			"operationId": method + strings.NewReplacer("/", "_", "{", "", "}", "").Replace(path),
			"summary":     strings.ToUpper(method) + " " + path,
			"responses":   responsesFor(method),
		}

		var params []map[string]interface{}
		for _, m := range pathParamPattern.FindAllStringSubmatch(r.Path, -1) {
			params = append(params, map[string]interface{}{
				"name":     m[1],
				"in":       "path",
				"required": true,
				"schema":   map[string]string{"type": "integer"},
			})
		}
		if len(params) > 0 {
			op["parameters"] = params
		}
		if method == "post" || method == "put" {
			op["requestBody"] = map[string]interface{}{
				"required": true,
				"content":  map[string]interface{}{echo.MIMEApplicationJSON: map[string]interface{}{}},
			}
		}

		if paths[path] == nil {
			paths[path] = map[string]interface{}{}
		}
		paths[path][method] = op
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]string{
			"title":   "CornerStore API",
			"version": "1.0.0",
		},
		"paths": paths,
	}
}

func isDocumentedMethod(method string) bool {
	switch method {
	case "get", "post", "put", "patch", "delete":
		return true
	}
	return false
}

func responsesFor(method string) map[string]interface{} {
	switch method {
	case "post":
		return map[string]interface{}{"201": map[string]string{"description": "Created"}}
	case "put", "delete":
		return map[string]interface{}{
			"204": map[string]string{"description": "No Content"},
			"404": map[string]string{"description": "Not Found"},
		}
	}
	return map[string]interface{}{"200": map[string]string{"description": "OK"}}
}
