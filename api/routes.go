package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/expense"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	apiConfig := huma.DefaultConfig("finance-tracker", "1.0.0")
	humaAPI := humago.New(mux, apiConfig)
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	budget.NewSaveBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewUpsertCategoryHandler(r.Operator).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewGetBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewSummaryHandler(r.Service.Budget).Register(humaAPI)

	expense.NewCreateExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewUpdateExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewDeleteExpenseHandler(r.Operator).Register(humaAPI)
	expense.NewGetExpenseHandler(r.Service.Expense).Register(humaAPI)
	expense.NewListExpensesHandler(r.Service.Expense).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
