package httpresp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPaging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query       string
		page, limit int
	}{
		{"", 1, DefaultLimit},
		{"?page=3&limit=5", 3, 5},
		{"?page=-1&limit=0", 1, DefaultLimit},
		{"?page=x&limit=1000", 1, MaxLimit},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)

		page, limit := Paging(c)
		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.limit, limit, tc.query)
	}
}

func TestPaged_EmptyIsArray(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Paged[int](c, nil, 1, 20, 0)
	assert.JSONEq(t, `{"data":[],"page":1,"limit":20,"total":0}`, w.Body.String())
}
