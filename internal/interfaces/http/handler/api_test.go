package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	budgetingapp "github.com/celengan/backend/internal/application/budgeting"
	identityapp "github.com/celengan/backend/internal/application/identity"
	onboardingapp "github.com/celengan/backend/internal/application/onboarding"
	"github.com/celengan/backend/internal/infrastructure/auth"
	"github.com/celengan/backend/internal/infrastructure/cache"
	"github.com/celengan/backend/internal/infrastructure/persistence"
	"github.com/celengan/backend/internal/infrastructure/persistence/models"
	"github.com/celengan/backend/internal/interfaces/http/dto"
	"github.com/celengan/backend/internal/interfaces/http/middleware"
	"github.com/celengan/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testAPI wires the full HTTP stack over an in-memory database. Requests are
// authenticated by injecting the identity directly, bypassing token parsing.
type testAPI struct {
	engine   *gin.Engine
	identity *auth.Identity
}

func setupAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(models.AllModels...))

	db := &persistence.Database{DB: gormDB}
	log := zap.NewNop()

	profileRepo := persistence.NewGormProfileRepository(gormDB)
	groupRepo := persistence.NewGormGroupRepository(gormDB)
	categoryRepo := persistence.NewGormCategoryRepository(gormDB)
	budgetRepo := persistence.NewGormBudgetRepository(gormDB)
	transactionRepo := persistence.NewGormTransactionRepository(gormDB)

	api := &testAPI{
		identity: &auth.Identity{
			ProfileID: uuid.New(),
			Email:     "budi@example.com",
		},
	}

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if api.identity != nil {
			c.Set(middleware.IdentityKey, api.identity)
		}
		c.Next()
	})

	router.NewRouter(engine).
		Register(NewSystemHandler(db)).
		Register(NewOnboardingHandler(onboardingapp.NewOnboardingService(db, cache.NewInMemoryIdempotencyStore(), 2*time.Minute, log))).
		Register(NewGroupHandler(budgetingapp.NewGroupService(groupRepo, profileRepo))).
		Register(NewCategoryHandler(budgetingapp.NewCategoryService(categoryRepo, groupRepo, log))).
		Register(NewTransactionHandler(budgetingapp.NewTransactionService(transactionRepo, groupRepo, log))).
		Register(NewBudgetHandler(budgetingapp.NewBudgetService(budgetRepo, groupRepo))).
		Register(NewProfileHandler(identityapp.NewProfileService(profileRepo, groupRepo, log))).
		Setup()

	api.engine = engine
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func onboardingPayload() map[string]any {
	return map[string]any{
		"groupName":           "Keluarga Budi",
		"monthlyIncomeRupiah": 15000000,
		"budgetItems": []map[string]any{
			{"name": "Groceries", "limitRupiah": 2500000},
			{"name": "Streaming", "kind": "expense", "limitRupiah": 150000},
		},
	}
}

// completeOnboarding submits the default payload and returns the id of the
// created group, looked up through the listing since the completion response
// carries no identifiers.
func completeOnboarding(t *testing.T, api *testAPI) string {
	t.Helper()

	w := api.do(t, http.MethodPost, "/api/v1/onboarding/complete", onboardingPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/v1/groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	groups := decodeResponse(t, w).Data.([]any)
	require.Len(t, groups, 1)
	return groups[0].(map[string]any)["id"].(string)
}

func TestAPI_OnboardingFlow(t *testing.T) {
	api := setupAPI(t)

	// Fresh identity has no groups yet
	w := api.do(t, http.MethodGet, "/api/v1/onboarding/check", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, false, resp.Data.(map[string]any)["hasGroups"])

	w = api.do(t, http.MethodPost, "/api/v1/onboarding/complete", onboardingPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp = decodeResponse(t, w)
	require.True(t, resp.Success)
	assert.Nil(t, resp.Data, "completion response carries no identifiers")

	w = api.do(t, http.MethodGet, "/api/v1/onboarding/check", nil)
	resp = decodeResponse(t, w)
	assert.Equal(t, true, resp.Data.(map[string]any)["hasGroups"])

	var groupID string
	t.Run("group appears in the listing and is active", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/groups", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		groups := resp.Data.([]any)
		require.Len(t, groups, 1)
		group := groups[0].(map[string]any)
		groupID = group["id"].(string)
		assert.Equal(t, "Keluarga Budi", group["name"])
		assert.Equal(t, true, group["isActive"])
	})

	t.Run("categories include the defaults plus payload-only names", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/categories?groupId="+groupID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		categories := resp.Data.([]any)
		assert.Len(t, categories, 17)
	})

	t.Run("budget is listed with its items", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/budgets?groupId="+groupID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		budgets := resp.Data.([]any)
		require.Len(t, budgets, 1)
		items := budgets[0].(map[string]any)["items"].([]any)
		assert.Len(t, items, 2)
	})

	t.Run("profile reflects completed onboarding", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/profiles/me", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		profile := resp.Data.(map[string]any)
		assert.Equal(t, true, profile["onboardingCompleted"])
		assert.Equal(t, groupID, profile["activeGroupId"])
	})
}

func TestAPI_Onboarding_ValidationFailure(t *testing.T) {
	api := setupAPI(t)

	payload := onboardingPayload()
	delete(payload, "groupName")

	w := api.do(t, http.MethodPost, "/api/v1/onboarding/complete", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestAPI_Onboarding_AllInvalidItemsRejected(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/onboarding/complete", map[string]any{
		"groupName": "Keluarga",
		"budgetItems": []map[string]any{
			{"name": "   ", "limitRupiah": 100},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestAPI_TransactionFlow(t *testing.T) {
	api := setupAPI(t)

	groupID := completeOnboarding(t, api)

	w := api.do(t, http.MethodPost, "/api/v1/transactions", map[string]any{
		"groupId":     groupID,
		"occurredAt":  "2024-03-10T00:00:00Z",
		"amountCents": 1250000,
		"direction":   "expense",
		"description": "Pasar mingguan",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	tx := resp.Data.(map[string]any)
	assert.Equal(t, "Pasar mingguan", tx["description"])
	assert.Equal(t, "IDR", tx["currency"])
	assert.Equal(t, "mine", tx["owner"])

	t.Run("listing returns the transaction with pagination meta", func(t *testing.T) {
		w := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/transactions?groupId=%s&direction=expense", groupID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(1), resp.Meta.Total)
		assert.Len(t, resp.Data.([]any), 1)
	})

	t.Run("date filter excludes transactions outside the range", func(t *testing.T) {
		w := api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/transactions?groupId=%s&from=2024-04-01&to=2024-04-30", groupID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, int64(0), resp.Meta.Total)
	})

	t.Run("non-member cannot record transactions", func(t *testing.T) {
		original := api.identity
		api.identity = &auth.Identity{ProfileID: uuid.New(), Email: "intruder@example.com"}
		defer func() { api.identity = original }()

		w := api.do(t, http.MethodPost, "/api/v1/transactions", map[string]any{
			"groupId":     groupID,
			"occurredAt":  "2024-03-10T00:00:00Z",
			"amountCents": 100,
			"direction":   "expense",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAPI_CategorySeedIsIdempotent(t *testing.T) {
	api := setupAPI(t)

	groupID := completeOnboarding(t, api)

	w := api.do(t, http.MethodPost, "/api/v1/categories/seed", map[string]any{"groupId": groupID})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	result := resp.Data.(map[string]any)
	assert.Equal(t, float64(0), result["added"])
}

func TestAPI_SetActiveGroup(t *testing.T) {
	api := setupAPI(t)

	groupID := completeOnboarding(t, api)

	w := api.do(t, http.MethodPut, "/api/v1/profiles/active-group", map[string]any{"groupId": groupID})
	assert.Equal(t, http.StatusOK, w.Code)

	t.Run("rejects a group the profile does not belong to", func(t *testing.T) {
		w := api.do(t, http.MethodPut, "/api/v1/profiles/active-group", map[string]any{"groupId": uuid.NewString()})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAPI_GroupMembers(t *testing.T) {
	api := setupAPI(t)

	groupID := completeOnboarding(t, api)

	w := api.do(t, http.MethodGet, "/api/v1/groups/"+groupID+"/members", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	members := resp.Data.([]any)
	require.Len(t, members, 1)
	member := members[0].(map[string]any)
	assert.Equal(t, "owner", member["role"])
	assert.Equal(t, "budi@example.com", member["email"])
}

func TestAPI_Health(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	health := resp.Data.(map[string]any)
	assert.Equal(t, "ok", health["status"])
}
