package handler

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"hireflow/internal/delivery/http/middleware"
	"hireflow/internal/domain/user"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/repository"
	"hireflow/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubJobUsecase struct{}

func (stubJobUsecase) ListJobs(context.Context, repository.JobListFilter) ([]usecase.JobDetail, error) {
	return []usecase.JobDetail{}, nil
}

func (stubJobUsecase) GetJob(context.Context, uuid.UUID) (usecase.JobDetail, error) {
	return usecase.JobDetail{}, nil
}

func (stubJobUsecase) CreateJob(context.Context, uuid.UUID, usecase.JobInput) (usecase.JobDetail, error) {
	return usecase.JobDetail{}, nil
}

func (stubJobUsecase) UpdateJob(context.Context, uuid.UUID, uuid.UUID, usecase.JobInput) (usecase.JobDetail, error) {
	return usecase.JobDetail{}, nil
}

func (stubJobUsecase) DeleteJob(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (stubJobUsecase) ListMyJobs(context.Context, uuid.UUID) ([]repository.JobWithApplicationCount, error) {
	return []repository.JobWithApplicationCount{}, nil
}

type stubApplicationUsecase struct{}

func (stubApplicationUsecase) Apply(context.Context, uuid.UUID, usecase.ApplyInput) (repository.Application, error) {
	return repository.Application{}, nil
}

func (stubApplicationUsecase) GetApplication(context.Context, uuid.UUID, uuid.UUID) (repository.Application, error) {
	return repository.Application{}, nil
}

func (stubApplicationUsecase) ListMyApplications(context.Context, uuid.UUID) ([]repository.SeekerApplication, error) {
	return []repository.SeekerApplication{}, nil
}

func (stubApplicationUsecase) ListApplicants(context.Context, uuid.UUID, uuid.UUID) ([]repository.ApplicantCard, error) {
	return []repository.ApplicantCard{}, nil
}

func (stubApplicationUsecase) UpdateStatus(context.Context, uuid.UUID, uuid.UUID, string) (repository.Application, error) {
	return repository.Application{}, nil
}

func (stubApplicationUsecase) SaveJob(context.Context, uuid.UUID, uuid.UUID) error   { return nil }
func (stubApplicationUsecase) UnsaveJob(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (stubApplicationUsecase) ListSavedJobs(context.Context, uuid.UUID) ([]repository.Job, error) {
	return []repository.Job{}, nil
}

func newRouteTestApp(t *testing.T) (*fiber.App, jwt.Service) {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())

	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	auth := middleware.NewAuthMiddleware(jwtSvc)

	api := app.Group("/api/v1")
	NewJobHandler(stubJobUsecase{}, auth).RegisterRoutes(api)
	NewApplicationHandler(stubApplicationUsecase{}, auth).RegisterRoutes(api)
	return app, jwtSvc
}

func accessTokenFor(t *testing.T, jwtSvc jwt.Service, role string) string {
	t.Helper()

	token, err := jwtSvc.GenerateAccessToken(jwt.Identity{
		UserID: uuid.New(),
		Email:  role + "@example.com",
		Role:   role,
		Status: user.StatusApproved,
	})
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	return token
}

func TestRegisterRoutes_RoleMiddlewareChains(t *testing.T) {
	app, jwtSvc := newRouteTestApp(t)

	recruiterToken := accessTokenFor(t, jwtSvc, user.RoleRecruiter)
	seekerToken := accessTokenFor(t, jwtSvc, user.RoleJobSeeker)

	cases := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "job list is public", method: fiber.MethodGet, path: "/api/v1/jobs/", wantStatus: fiber.StatusOK},
		{name: "recruiter lists own jobs", method: fiber.MethodGet, path: "/api/v1/jobs/mine", token: recruiterToken, wantStatus: fiber.StatusOK},
		{name: "seeker cannot list recruiter jobs", method: fiber.MethodGet, path: "/api/v1/jobs/mine", token: seekerToken, wantStatus: fiber.StatusForbidden},
		{name: "anonymous cannot list recruiter jobs", method: fiber.MethodGet, path: "/api/v1/jobs/mine", wantStatus: fiber.StatusUnauthorized},
		{name: "seeker lists own applications", method: fiber.MethodGet, path: "/api/v1/applications/mine", token: seekerToken, wantStatus: fiber.StatusOK},
		{name: "recruiter cannot list seeker applications", method: fiber.MethodGet, path: "/api/v1/applications/mine", token: recruiterToken, wantStatus: fiber.StatusForbidden},
		{name: "seeker lists saved jobs", method: fiber.MethodGet, path: "/api/v1/saved-jobs/", token: seekerToken, wantStatus: fiber.StatusOK},
		{name: "anonymous cannot list saved jobs", method: fiber.MethodGet, path: "/api/v1/saved-jobs/", wantStatus: fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request %s %s: %v", tc.method, tc.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, resp.StatusCode, tc.wantStatus)
			}
		})
	}
}
