package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ngoportal/internal/domain"
	"ngoportal/internal/middleware"
)

func adminWithPassword(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.AdminUser{ID: 1, Username: "admin", PasswordHash: string(hash)}
}

func TestAdminLogin_IssuesVerifiableToken(t *testing.T) {
	app := newTestApp()
	app.Admins = &fakeAdmins{user: adminWithPassword(t, "s3cret")}

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/login",
		strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	app.AdminLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	claims, err := middleware.VerifyAdminToken(app.AdminTokenSecret, resp["token"])
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	app := newTestApp()
	app.Admins = &fakeAdmins{user: adminWithPassword(t, "s3cret")}

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/login",
		strings.NewReader(`{"username":"admin","password":"guess"}`))
	rec := httptest.NewRecorder()

	app.AdminLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogin_UnknownUsername(t *testing.T) {
	app := newTestApp()
	app.Admins = &fakeAdmins{err: domain.ErrNotFound}

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/login",
		strings.NewReader(`{"username":"ghost","password":"whatever"}`))
	rec := httptest.NewRecorder()

	app.AdminLogin(rec, req)

	// unknown user and wrong password are indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminDashboard_RendersDateOnly(t *testing.T) {
	app := newTestApp()
	app.Reports = &fakeReports{stats: &domain.DashboardStats{
		TotalDonors: 3,
		RecentDonations: []domain.RecentDonation{{
			Donation: domain.Donation{
				ID:            8,
				Amount:        decimal.NewFromInt(250),
				DonationDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				PaymentMethod: "card",
			},
			DonorName: "Asha Rao",
			NgoName:   "Clean Water Trust",
		}},
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	app.AdminDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["total_donors"])
	recent := resp["recent_donations"].([]any)
	require.Len(t, recent, 1)
	assert.Equal(t, "2026-09-01", recent[0].(map[string]any)["donation_date"])
}

func TestAdminRedistributeFunds_DelegateFailureIs502(t *testing.T) {
	app := newTestApp()
	app.NGOs = &fakeNGOs{err: domain.ErrDelegate}

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/redistribute-funds", nil)
	rec := httptest.NewRecorder()

	app.AdminRedistributeFunds(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAdminRedistributeFunds_ReturnsTransferHistory(t *testing.T) {
	app := newTestApp()
	app.NGOs = &fakeNGOs{transfers: []domain.Redistribution{{
		FromNgo: "Clean Water Trust",
		ToNgo:   "Shelter Aid",
		Amount:  decimal.NewFromInt(5000),
		Date:    time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}}}

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/redistribute-funds", nil)
	rec := httptest.NewRecorder()

	app.AdminRedistributeFunds(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["items"], 1)
	assert.Equal(t, "Shelter Aid", resp["items"][0]["to_ngo"])
}
