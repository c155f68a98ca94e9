package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/models"
)

type stubAuthService struct {
	loginReq   dto.LoginRequest
	logoutUID  string
	changeUID  string
	changeMail string
	changeReq  dto.ChangePasswordRequest
	err        error
}

func (s *stubAuthService) Login(_ context.Context, req dto.LoginRequest) (models.Session, error) {
	s.loginReq = req
	return models.Session{UID: "uid-1"}, s.err
}

func (s *stubAuthService) Logout(_ context.Context, uid string) error {
	s.logoutUID = uid
	return s.err
}

func (s *stubAuthService) ChangePassword(_ context.Context, uid, email string, req dto.ChangePasswordRequest) error {
	s.changeUID, s.changeMail, s.changeReq = uid, email, req
	return s.err
}

type stubSettingsService struct {
	req dto.SettingsRequest
}

func (s *stubSettingsService) Get(_ context.Context) (models.SiteSettings, error) {
	return models.DefaultSiteSettings(), nil
}

func (s *stubSettingsService) Update(_ context.Context, req dto.SettingsRequest) (models.SiteSettings, error) {
	s.req = req
	return models.DefaultSiteSettings(), nil
}

type stubDashboardService struct{}

func (stubDashboardService) Stats(_ context.Context) (dto.DashboardStats, error) {
	return dto.DashboardStats{TotalPackages: 3}, nil
}

func TestLogin(t *testing.T) {
	svc := &stubAuthService{}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: svc})

	body := `{"email":"admin@example.com","password":"secret"}`
	h.Login(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	if svc.loginReq.Email != "admin@example.com" || svc.loginReq.Password != "secret" {
		t.Fatalf("unexpected request: %+v", svc.loginReq)
	}
	if resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("status = %d", resp.writeSuccessStatus)
	}
}

func TestLogoutUsesSessionUID(t *testing.T) {
	svc := &stubAuthService{}
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: svc})

	req := withUser(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), "uid-7", "a@example.com")
	h.Logout(httptest.NewRecorder(), req)

	if svc.logoutUID != "uid-7" {
		t.Fatalf("uid = %q", svc.logoutUID)
	}
}

func TestChangePassword(t *testing.T) {
	auth := &stubAuthService{}
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, AuthSvc: auth, SettingsSvc: &stubSettingsService{}})

	body := `{"currentPassword":"old","newPassword":"abcdef","confirmPassword":"abcdef"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/settings/password", strings.NewReader(body)), "uid-1", "admin@example.com")
	h.ChangePassword(httptest.NewRecorder(), req)

	if auth.changeUID != "uid-1" || auth.changeMail != "admin@example.com" || auth.changeReq.NewPassword != "abcdef" {
		t.Fatalf("unexpected call: uid=%q email=%q req=%+v", auth.changeUID, auth.changeMail, auth.changeReq)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}

func TestUpdateSettings(t *testing.T) {
	svc := &stubSettingsService{}
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, SettingsSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"sitePhone":"+1 555"}`))
	h.UpdateSettings(httptest.NewRecorder(), req)

	if svc.req.SitePhone == nil || *svc.req.SitePhone != "+1 555" || svc.req.SiteName != nil {
		t.Fatalf("unexpected request: %+v", svc.req)
	}
}

func TestGetStats(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewDashboardHandlers(&Deps{ResponseHandler: resp, DashboardSvc: stubDashboardService{}})

	h.GetStats(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

	stats, ok := resp.writeSuccessData.(dto.DashboardStats)
	if !ok || stats.TotalPackages != 3 {
		t.Fatalf("unexpected data: %#v", resp.writeSuccessData)
	}
}
