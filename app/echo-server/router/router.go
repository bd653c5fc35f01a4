package router

import (
	"capitalRuns/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupActualRunRoutes(api *echo.Group, handler *rest.ActualRunsHandler) {
	runs := api.Group("/actual-runs")

	runs.POST("", handler.CreateActualRun)
	runs.GET("", handler.GetActualRuns)
}

func SetupExperimentRunRoutes(api *echo.Group, handler *rest.ExperimentRunsHandler) {
	runs := api.Group("/experiment-runs")

	runs.POST("", handler.CreateExperimentRun)
	runs.GET("", handler.GetExperimentRuns)
	runs.DELETE("/:id", handler.DeleteExperimentRun)
}

func SetupScenarioRunRoutes(api *echo.Group, handler *rest.ScenarioRunsHandler) {
	runs := api.Group("/scenario-runs")

	runs.POST("", handler.CreateScenarioRun)
	runs.GET("", handler.GetScenarioRuns)
	runs.PUT("/:id", handler.UpdateScenarioRun)
}

func SetupTaxonomyRoutes(api *echo.Group, handler *rest.TaxonomyHandler) {
	api.GET("/business-units", handler.GetBusinessUnits)
	api.POST("/business-units", handler.CreateBusinessUnit)
	api.GET("/products", handler.GetProducts)
	api.GET("/basel-event-types", handler.GetBaselEventTypes)
	api.POST("/reset-data", handler.ResetData)
}

func SetupUploadRoutes(api *echo.Group, handler *rest.UploadHandler) {
	api.POST("/upload-csv", handler.UploadCSV)
}

func SetupHealthRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/health", handler.Health)
}
