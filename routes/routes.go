package routes

import (
	"errors"
	"net/http"
	"time"

	"booking/configs"
	"booking/controllers"
	"booking/middlewares"
	"booking/pkg/resp"
	"booking/repository"
	"booking/services"
	"booking/utils"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the engine with the ambient middleware and every route.
func NewRouter(db *gorm.DB, cfg *configs.Config, uploader services.MediaUploader, log *zap.Logger) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", utils.RequestID(c))}
		},
	}))
	r.Use(ginzap.CustomRecoveryWithZap(log, true, recovered))
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestTimeout(cfg.RequestTimeout))

	RegisterRoutes(r, db, cfg, uploader, log)
	return r, nil
}

// recovered answers a panicking request with the usual 500 envelope. The
// panic value and stack are logged by the recovery middleware, not returned.
func recovered(c *gin.Context, _ any) {
	resp.ServerError(c, errors.New("unexpected server error"))
	c.Abort()
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, uploader services.MediaUploader, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	// Controllers
	hotelCtrl := controllers.NewHotelController(
		services.NewHotelService(repository.NewHotelRepository(db)))
	roomCtrl := controllers.NewRoomController(
		services.NewRoomService(repository.NewRoomRepository(db), uploader, log))
	reviewCtrl := controllers.NewReviewController(
		services.NewReviewService(repository.NewReviewRepository(db)))

	admin := middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleAdmin)
	user := middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleUser)
	upload := middlewares.BodyLimit(cfg.MaxUploadBytes)

	v1 := r.Group("/api/v1")
	{
		// Public
		v1.GET("/get-hotels", hotelCtrl.List)
		v1.GET("/get-rooms", roomCtrl.List)
		v1.GET("/get-rooms-by-hotelId", roomCtrl.ListByHotel)

		// Admin
		v1.POST("/create-hotel", admin, hotelCtrl.Create)
		v1.POST("/create-room", admin, upload, roomCtrl.Create)
		v1.PUT("/edit-room/:roomId", admin, upload, roomCtrl.Edit)
		v1.DELETE("/delete-room/:roomId", admin, roomCtrl.Delete)

		v1.GET("/get-reviews-by-hotelId/:hotelId", admin, reviewCtrl.ListByHotel)
		v1.GET("/get-reviews-by-tourId/:tourId", admin, reviewCtrl.ListByTour)
		v1.GET("/get-reviews", admin, reviewCtrl.List)

		// User
		v1.POST("/create-review", user, reviewCtrl.Create)
	}
}
