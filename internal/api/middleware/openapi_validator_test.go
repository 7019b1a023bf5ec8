package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizeValidationPath(t *testing.T) {
	testCases := []struct {
		name     string
		basePath string
		path     string
		want     string
	}{
		{name: "strip prefix", basePath: "/api/v1", path: "/api/v1/imports", want: "/imports"},
		{name: "root path", basePath: "/api/v1", path: "/api/v1", want: "/"},
		{name: "no match", basePath: "/api/v1", path: "/health/live", want: "/health/live"},
		{name: "empty base", basePath: "", path: "/imports", want: "/imports"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeValidationPath(normalizeBasePath(tc.basePath), tc.path)
			if got != tc.want {
				t.Fatalf("normalizeValidationPath mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestOpenAPIValidatorRejectsUnknownResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.POST("/api/v1/conflicts/:id/resolve", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"merge_performed": false})
	})

	reqBody := `{"resolution":"DISCARD","justification":"wrong decision kind"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/5a5d8a4e-6f50-4f7e-9f61-2a6a1f3f0b21/resolve", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown resolution, got %d body=%s", resp.Code, resp.Body.String())
	}
}

func TestOpenAPIValidatorRejectsResolveWithoutJustification(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.POST("/api/v1/conflicts/:id/resolve", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"merge_performed": true})
	})

	reqBody := `{"resolution":"MERGE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/5a5d8a4e-6f50-4f7e-9f61-2a6a1f3f0b21/resolve", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing justification, got %d", resp.Code)
	}
}

func TestOpenAPIValidatorAcceptsValidResolveRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.POST("/api/v1/conflicts/:id/resolve", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"merge_performed": true})
	})

	reqBody := `{
		"resolution":"MERGE",
		"justification":"same person, national id matches",
		"master_entity_id":"00000000-0000-0000-0000-000000000007"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/5a5d8a4e-6f50-4f7e-9f61-2a6a1f3f0b21/resolve", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid resolve body, got %d body=%s", resp.Code, resp.Body.String())
	}
}

func TestOpenAPIValidatorRejectsUnknownStatusFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.GET("/api/v1/imports", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": []gin.H{}, "total_count": 0})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports?status=SHIPPED", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status filter, got %d", resp.Code)
	}
}

func TestOpenAPIValidatorAcceptsListRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.GET("/api/v1/imports", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items": []gin.H{
				{"id": "00000000-0000-0000-0000-000000000001", "package_number": "PKG-2026-000042", "status": "VALIDATED"},
			},
			"total_count": 1,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports?status=VALIDATED&offset=0&limit=20", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid list request, got %d body=%s", resp.Code, resp.Body.String())
	}
}

func TestOpenAPIValidatorPassesThroughUnknownPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MustOpenAPIValidator("/api/v1"))
	router.GET("/internal/debug", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/internal/debug", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected unknown path to pass through, got %d", resp.Code)
	}
}
