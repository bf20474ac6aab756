package handler

import (
	"net/http"

	"github.com/vfg2006/agency-ops-api/internal/api/handler/router"
	"github.com/vfg2006/agency-ops-api/internal/usecases/analyzing"
	"github.com/vfg2006/agency-ops-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-ops-api/internal/usecases/marketing"
	"github.com/vfg2006/agency-ops-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/roi",
			Method:      http.MethodGet,
			Handler:     GetRoiAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/roi/snapshot",
			Method:      http.MethodGet,
			Handler:     GetAnalyticsSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/producer-detail",
			Method:      http.MethodGet,
			Handler:     GetProducerDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Marketing(service marketing.MarketingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/lead-sources",
			Method:      http.MethodGet,
			Handler:     ListLeadSources(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/lead-sources",
			Method:      http.MethodPost,
			Handler:     CreateLeadSource(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/lead-sources/:id",
			Method:      http.MethodPut,
			Handler:     UpdateLeadSource(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/lead-sources/spend",
			Method:      http.MethodGet,
			Handler:     ListSpend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/lead-sources/spend/save",
			Method:      http.MethodPut,
			Handler:     SaveSpend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
