package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/tathastu-fit/tathastu-erp/internal/analytics"
	"github.com/tathastu-fit/tathastu-erp/internal/diet"
	"github.com/tathastu-fit/tathastu-erp/internal/equipment"
	"github.com/tathastu-fit/tathastu-erp/internal/finance"
	"github.com/tathastu-fit/tathastu-erp/internal/inventory"
	"github.com/tathastu-fit/tathastu-erp/internal/leads"
	"github.com/tathastu-fit/tathastu-erp/internal/members"
	"github.com/tathastu-fit/tathastu-erp/internal/overview"
	"github.com/tathastu-fit/tathastu-erp/internal/staff"
	"github.com/tathastu-fit/tathastu-erp/jobs"
)

// aiRateLimit throttles the endpoints that call the paid text service.
const aiRateLimit = 10

// RouterParams aggregates everything the router mounts.
type RouterParams struct {
	Logger    *slog.Logger
	Config    *Config
	Members   *members.Handler
	Analytics *analytics.Handler
	Inventory *inventory.Handler
	Equipment *equipment.Handler
	Staff     *staff.Handler
	Finance   *finance.Handler
	Leads     *leads.Handler
	Diet      *diet.Handler
	Overview  *overview.Handler
	Jobs      *jobs.Handler
}

// NewRouter assembles the HTTP surface.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	for _, mw := range MiddlewareStack(MiddlewareConfig{Logger: p.Logger, Config: p.Config}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/members", p.Members.MountRoutes)
		api.Route("/analytics", p.Analytics.MountRoutes)
		api.Route("/inventory", p.Inventory.MountRoutes)
		api.Route("/equipment", p.Equipment.MountRoutes)
		api.Route("/staff", p.Staff.MountRoutes)
		api.Route("/finance", p.Finance.MountRoutes)

		api.Get("/overview", p.Overview.HandleDashboard)
		api.Get("/leads", p.Leads.HandleList)
		api.Post("/campaigns", p.Leads.HandleLaunchCampaign)
		api.Post("/expenses", p.Finance.HandleAddExpense)
		api.Post("/retention/trigger", p.Members.HandleTriggerRetention)

		api.Group(func(ai chi.Router) {
			ai.Use(httprate.Limit(aiRateLimit, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			ai.Post("/ads/generate", p.Leads.HandleGenerateAd)
			ai.Post("/diet/generate", p.Diet.HandleGeneratePlan)
		})

		if p.Jobs != nil {
			api.Route("/jobs", p.Jobs.MountRoutes)
		}
	})

	return r
}
