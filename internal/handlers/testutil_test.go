package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fittrackhq/fittrack-backend/internal/config"
	"github.com/fittrackhq/fittrack-backend/internal/handlers"
	"github.com/fittrackhq/fittrack-backend/internal/models"
	"github.com/fittrackhq/fittrack-backend/internal/routes"
	"github.com/fittrackhq/fittrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubVerifier resolves fixed tokens to fixed claims, standing in for the
// identity provider.
type stubVerifier struct {
	claims map[string]*services.IdentityClaims
}

func (v *stubVerifier) Verify(token string) (*services.IdentityClaims, error) {
	if claims, ok := v.claims[token]; ok {
		return claims, nil
	}
	return nil, errors.New("signature verification failed")
}

func newTestApp(t *testing.T, verifier services.TokenVerifier) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.WorkoutRoutine{},
		&models.RoutineStep{},
		&models.Equipment{},
		&models.Workout{},
	))

	cfg := &config.Config{CORSOrigins: "*"}
	if verifier == nil {
		verifier = &stubVerifier{}
	}

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(services.NewAuthService(db, verifier)),
		handlers.NewWorkoutHandler(services.NewWorkoutService(db)),
		handlers.NewRoutineHandler(services.NewRoutineService(db)),
		handlers.NewHealthHandler(db),
		nil,
	)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}
