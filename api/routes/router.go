package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kilincfaruk/FuatAtolye/api/controllers"
	"github.com/kilincfaruk/FuatAtolye/api/middleware"
	"github.com/kilincfaruk/FuatAtolye/internal/backup"
	"github.com/kilincfaruk/FuatAtolye/internal/customers"
	"github.com/kilincfaruk/FuatAtolye/internal/expenses"
	"github.com/kilincfaruk/FuatAtolye/internal/goldprice"
	"github.com/kilincfaruk/FuatAtolye/internal/jobs"
	"github.com/kilincfaruk/FuatAtolye/internal/payments"
	"github.com/kilincfaruk/FuatAtolye/internal/snapshot"
	"github.com/kilincfaruk/FuatAtolye/internal/worktypes"
	"github.com/kilincfaruk/FuatAtolye/pkg/logger"
)

func NewRouter(
	logg *logger.Logger,
	dbP controllers.Pinger,
	cacheP controllers.Pinger,
	store *snapshot.Store,
	customerService customers.Service,
	jobService jobs.Service,
	paymentService payments.Service,
	expenseService expenses.Service,
	workTypeService worktypes.Service,
	backupService backup.Service,
	goldPriceService *goldprice.Service,
	metricsHandler http.Handler,
	extraOrigins ...string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(extraOrigins...),
	)

	r.Get("/healthz", controllers.Health(dbP, cacheP, logg))
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomersList(customerService, logg))
			r.Post("/", controllers.CustomerCreate(customerService, logg))
			r.Put("/{customerID}", controllers.CustomerRename(customerService, logg))
			r.Delete("/{customerID}", controllers.CustomerDelete(customerService, logg))
			r.Get("/{customerID}/statement", controllers.Statement(store, customerService, logg))
			r.Get("/{customerID}/statement/export", controllers.StatementExport(store, customerService, logg))
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", controllers.JobsList(jobService, logg))
			r.Post("/", controllers.JobCreate(jobService, logg))
			r.Put("/{jobID}", controllers.JobUpdate(jobService, logg))
			r.Delete("/{jobID}", controllers.JobDelete(jobService, logg))
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", controllers.PaymentsList(paymentService, logg))
			r.Post("/", controllers.PaymentCreate(paymentService, logg))
			r.Put("/{paymentID}", controllers.PaymentUpdate(paymentService, logg))
			r.Delete("/{paymentID}", controllers.PaymentDelete(paymentService, logg))
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", controllers.ExpensesList(expenseService, logg))
			r.Get("/total", controllers.ExpensesTotal(expenseService, logg))
			r.Post("/", controllers.ExpenseCreate(expenseService, logg))
			r.Put("/{expenseID}", controllers.ExpenseUpdate(expenseService, logg))
			r.Delete("/{expenseID}", controllers.ExpenseDelete(expenseService, logg))
		})

		r.Route("/work-types", func(r chi.Router) {
			r.Get("/", controllers.WorkTypesList(workTypeService, logg))
			r.Put("/{workTypeID}/price", controllers.WorkTypeUpdatePrice(workTypeService, logg))
			r.Delete("/{workTypeID}", controllers.WorkTypeDeactivate(workTypeService, logg))
			r.Post("/import-defaults", controllers.WorkTypesImportDefaults(workTypeService, logg))
		})

		r.Get("/dashboard", controllers.Dashboard(store, logg))
		r.Get("/reports/full-ledger", controllers.FullLedger(store, logg))
		r.Post("/backup/import", controllers.BackupImport(backupService, store, logg))
		r.Get("/gold-price", controllers.GoldPrice(goldPriceService, logg))
	})

	return r
}
