package endpoint

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ariebrainware/chiro-directory/config"
	"github.com/ariebrainware/chiro-directory/middleware"
	"github.com/ariebrainware/chiro-directory/model"
	"github.com/ariebrainware/chiro-directory/view"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type apiResp struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

// setupEndpointTestDB connects to a private in-memory store seeded with the demo listings.
// Cleanup is automatically registered via t.Cleanup().
func setupEndpointTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	t.Setenv("APPENV", "test")
	config.ResetConfigForTest()
	t.Cleanup(config.ResetConfigForTest)

	db, err := config.ConnectDatabase()
	if err != nil {
		t.Fatalf("failed to connect test DB: %v", err)
	}
	if _, err := model.InitChiropractorStore(context.Background(), db); err != nil {
		t.Fatalf("failed to seed test DB: %v", err)
	}

	t.Cleanup(func() {
		_ = config.CloseDatabase(db)
	})
	return db
}

// newTestRouter returns a new Gin engine with the page templates loaded.
// Use this for tests that don't need a DB injected.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(view.MustTemplates())
	return r
}

// setupEndpointTest returns a Gin engine and database connection configured for endpoint tests.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupEndpointTestDB(t)
	r := newTestRouter()
	r.Use(middleware.DatabaseMiddleware(db))
	return r, db
}

type requestSpec struct {
	method       string
	registerPath string
	requestPath  string
	handler      gin.HandlerFunc
	body         interface{}
	form         url.Values
}

func performRequest(r *gin.Engine, spec requestSpec) *httptest.ResponseRecorder {
	var reader *strings.Reader
	contentType := ""
	switch {
	case spec.form != nil:
		reader = strings.NewReader(spec.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case spec.body == nil:
		reader = strings.NewReader("")
	default:
		if s, ok := spec.body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, _ := json.Marshal(spec.body)
			reader = strings.NewReader(string(b))
		}
		contentType = "application/json"
	}

	req := httptest.NewRequest(spec.method, spec.requestPath, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequestWithHandler(r *gin.Engine, spec requestSpec) *httptest.ResponseRecorder {
	r.Handle(spec.method, spec.registerPath, spec.handler)
	return performRequest(r, spec)
}

func decodeAPIResp(t *testing.T, w *httptest.ResponseRecorder) apiResp {
	t.Helper()
	var resp apiResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

// assertStatus asserts that the response HTTP status code matches the expected value
func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code, w.Body.String())
}

func latestChiropractor(t *testing.T, db *gorm.DB) model.Chiropractor {
	t.Helper()
	var chiro model.Chiropractor
	if err := db.Order("id DESC").First(&chiro).Error; err != nil {
		t.Fatalf("fetch latest chiropractor: %v", err)
	}
	return chiro
}

func countChiropractors(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	n, err := model.NewChiropractorRepository(db).Count(context.Background())
	if err != nil {
		t.Fatalf("count chiropractors: %v", err)
	}
	return n
}

