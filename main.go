package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/codevance-sas/Nodal-API/handler"
	"github.com/codevance-sas/Nodal-API/pkg/conf"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
	"github.com/codevance-sas/Nodal-API/service"
)

var db *gorm.DB

func main() {
	conf.InitConf("./nodal.yaml")
	logger.InitLogger("nodal")

	var err error
	dsn := conf.Conf.GetString("database.dsn")
	db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormLogger.Config{
			SlowThreshold: time.Second,
			LogLevel:      gormLogger.Warn,
			Colorful:      true,
		}),
	})
	if err != nil {
		logger.Logger.Errorf("failed to connect database: %v", err)
		return
	}

	if replica := conf.Conf.GetString("database.replica_dsn"); replica != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{mysql.Open(replica)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			logger.Logger.Errorf("failed to register read replica: %v", err)
			return
		}
	}

	svc := service.NewService(db)
	r := SetupRouter(svc)
	_ = r.Run(fmt.Sprintf(":%d", conf.Conf.GetInt("server.port")))
}

func SetupRouter(svc *service.Service) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{conf.Conf.GetString("frontend.host")}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	h := handler.NewHandler(svc)
	api := r.Group("/v1")
	{
		api.POST("/hydraulics/calculate", h.Calculate)
		api.POST("/hydraulics/compare", h.CompareMethods)
		api.POST("/hydraulics/recommend", h.RecommendMethod)
		api.GET("/hydraulics/methods", h.ListMethods)
		api.GET("/hydraulics/example-input", h.ExampleInput)
		api.POST("/hydraulics/sensitivity/flowrate", h.FlowRateSensitivity)
		api.POST("/hydraulics/sensitivity/tubing", h.TubingSensitivity)
		api.POST("/hydraulics/export", h.ExportProfile)

		api.POST("/gas/calculate", h.CalculateGasPipeline)
		api.POST("/gas/diameter", h.GasPipelineDiameter)
		api.POST("/gas/sensitivity", h.GasPipelineSensitivity)
		api.POST("/gas/compressor", h.CompressorStation)
		api.GET("/gas/correlations", h.ListGasEquations)
		api.GET("/gas/example-input", h.GasExampleInput)

		api.POST("/surveys/import", h.ImportSurveys)
		api.GET("/surveys", h.ListSurveys)
		api.GET("/wells", h.ListWells)
	}

	return r
}
