package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/adtracker-api/internal/api/handler/router"
	"github.com/vfg2006/adtracker-api/internal/scheduler"
	"github.com/vfg2006/adtracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/adtracker-api/internal/usecases/planning"
	"github.com/vfg2006/adtracker-api/internal/usecases/reporting"
	"github.com/vfg2006/adtracker-api/internal/usecases/spying"
	"github.com/vfg2006/adtracker-api/internal/usecases/tracking"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/members",
			Method:  http.MethodGet,
			Handler: ListMembers(service),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/dashboard/series",
			Method:  http.MethodGet,
			Handler: GetDashboardSeries(service),
		},
		{
			Path:    "/v1/dashboard/analysis",
			Method:  http.MethodPost,
			Handler: AnalyzeDashboard(service),
		},
	}
}

func Offers(tracker tracking.Tracker, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/offers",
			Method:  http.MethodGet,
			Handler: ListOffers(tracker),
		},
		{
			Path:    "/v1/offers",
			Method:  http.MethodPost,
			Handler: CreateOffer(tracker),
		},
		{
			Path:    "/v1/offers/stats",
			Method:  http.MethodGet,
			Handler: GetOfferStats(reporter),
		},
		{
			Path:    "/v1/offers/:id",
			Method:  http.MethodPut,
			Handler: UpdateOffer(tracker),
		},
		{
			Path:    "/v1/offers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOffer(tracker),
		},
	}
}

func AdEntries(tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAdEntries(tracker),
		},
		{
			Path:    "/v1/ads",
			Method:  http.MethodPost,
			Handler: CreateAdEntry(tracker),
		},
		{
			Path:    "/v1/ads/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAdEntry(tracker),
		},
	}
}

func Expenses(tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses",
			Method:  http.MethodGet,
			Handler: ListExpenses(tracker),
		},
		{
			Path:    "/v1/expenses",
			Method:  http.MethodPost,
			Handler: CreateExpense(tracker),
		},
		{
			Path:    "/v1/expenses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteExpense(tracker),
		},
	}
}

func RecurringExpenses(tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/recurring-expenses",
			Method:  http.MethodGet,
			Handler: ListRecurringExpenses(tracker),
		},
		{
			Path:    "/v1/recurring-expenses",
			Method:  http.MethodPost,
			Handler: CreateRecurringExpense(tracker),
		},
		{
			Path:    "/v1/recurring-expenses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRecurringExpense(tracker),
		},
	}
}

func Projects(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects",
			Method:  http.MethodGet,
			Handler: ListProjects(service),
		},
		{
			Path:    "/v1/projects",
			Method:  http.MethodPost,
			Handler: CreateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodPut,
			Handler: UpdateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProject(service),
		},
		{
			Path:    "/v1/projects/:id/tasks",
			Method:  http.MethodGet,
			Handler: ListTasks(service),
		},
		{
			Path:    "/v1/projects/:id/tasks",
			Method:  http.MethodPost,
			Handler: CreateTask(service),
		},
		{
			Path:    "/v1/tasks/:id",
			Method:  http.MethodPut,
			Handler: UpdateTask(service),
		},
		{
			Path:    "/v1/tasks/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTask(service),
		},
	}
}

func References(service spying.Spy) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/references",
			Method:  http.MethodGet,
			Handler: ListReferences(service),
		},
		{
			Path:    "/v1/references",
			Method:  http.MethodPost,
			Handler: CreateReference(service),
		},
		{
			Path:    "/v1/references/:id",
			Method:  http.MethodDelete,
			Handler: DeleteReference(service),
		},
	}
}

func Snapshots(service *scheduler.DailySnapshotService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/snapshot",
			Method:  http.MethodGet,
			Handler: GetDashboardSnapshot(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
