package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/db"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOwnerControllerTest(t *testing.T) (*gin.Engine, *service.ApartmentService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	ownerService := service.NewOwnerService(repository.NewOwnerRepository(testDB))
	apartmentService := service.NewApartmentService(repository.NewApartmentRepository(testDB))
	ownerController := NewOwnerController(ownerService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/owners", ownerController.CreateOwner)
	router.GET("/owners/:id", ownerController.GetOwner)
	router.DELETE("/owners/:id", ownerController.DeleteOwner)
	router.GET("/owners/:id/apartments", ownerController.ListOwnerApartments)
	router.POST("/owners/:id/apartments/:apartment_id", ownerController.AssignApartment)
	router.DELETE("/owners/:id/apartments/:apartment_id", ownerController.DropApartment)

	return router, apartmentService
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOwnerController_CreateOwner(t *testing.T) {
	router, _ := setupOwnerControllerTest(t)

	w := postJSON(router, "/owners", gin.H{"id": 1, "name": "Alice"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), outcome.OK.String())

	// Duplicate id conflicts
	w = postJSON(router, "/owners", gin.H{"id": 1, "name": "Bob"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), outcome.AlreadyExists.String())

	// Malformed id
	w = postJSON(router, "/owners", gin.H{"id": -1, "name": "Carmen"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), outcome.BadParams.String())
}

func TestOwnerController_GetOwner(t *testing.T) {
	router, _ := setupOwnerControllerTest(t)

	require.Equal(t, http.StatusOK, postJSON(router, "/owners", gin.H{"id": 1, "name": "Alice"}).Code)

	req := httptest.NewRequest(http.MethodGet, "/owners/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var owner struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &owner))
	assert.Equal(t, 1, owner.ID)
	assert.Equal(t, "Alice", owner.Name)

	// Absent owner
	req = httptest.NewRequest(http.MethodGet, "/owners/42", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric id
	req = httptest.NewRequest(http.MethodGet, "/owners/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOwnerController_AssignAndDropApartment(t *testing.T) {
	router, apartments := setupOwnerControllerTest(t)

	require.Equal(t, http.StatusOK, postJSON(router, "/owners", gin.H{"id": 1, "name": "Alice"}).Code)
	require.Equal(t, outcome.OK, apartments.AddApartment(1, "12 Rothschild Blvd", "Tel Aviv", "Israel", 80))

	w := postJSON(router, "/owners/1/apartments/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/owners/1/apartments/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(router, "/owners/1/apartments/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/owners/1/apartments/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/owners/1/apartments/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOwnerController_ListOwnerApartments(t *testing.T) {
	router, apartments := setupOwnerControllerTest(t)

	require.Equal(t, http.StatusOK, postJSON(router, "/owners", gin.H{"id": 1, "name": "Alice"}).Code)
	require.Equal(t, outcome.OK, apartments.AddApartment(1, "12 Rothschild Blvd", "Tel Aviv", "Israel", 80))
	require.Equal(t, http.StatusOK, postJSON(router, "/owners/1/apartments/1", nil).Code)

	req := httptest.NewRequest(http.MethodGet, "/owners/1/apartments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Apartments []struct {
			ID int `json:"id"`
		} `json:"apartments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Apartments, 1)
	assert.Equal(t, 1, body.Apartments[0].ID)
}
