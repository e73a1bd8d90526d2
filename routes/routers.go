package routes

import (
	"context"

	"github.com/GivenCloud/Hotel-Manager/controllers"
	middlewares "github.com/GivenCloud/Hotel-Manager/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	bookingController := controllers.NewBookingController(db, redisCli, m)
	associationController := controllers.NewAssociationController(db)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// room-centric booking admission
	v1.GET("/room/:id/guests", bookingController.GetRoomGuests)
	v1.POST("/room/:id/guests", middlewares.AuthMiddleware(1, 2), bookingController.AddGuestsToRoom)
	v1.PUT("/room/:id/guests", middlewares.AuthMiddleware(1, 2), bookingController.UpdateRoomGuests)
	v1.DELETE("/room/:id/guests", middlewares.AuthMiddleware(1, 2), bookingController.RemoveGuestsFromRoom)

	// guest-centric booking admission
	v1.GET("/guest/:id/rooms", bookingController.GetGuestRooms)
	v1.POST("/guest/:id/rooms", middlewares.AuthMiddleware(1, 2), bookingController.AddRoomsToGuest)
	v1.PUT("/guest/:id/rooms", middlewares.AuthMiddleware(1, 2), bookingController.UpdateGuestRooms)
	v1.DELETE("/guest/:id/rooms", middlewares.AuthMiddleware(1, 2), bookingController.RemoveRoomsFromGuest)

	// plain service associations
	v1.POST("/hotel/:id/services", middlewares.AuthMiddleware(1, 2), associationController.AddServicesToHotel)
	v1.DELETE("/hotel/:id/services", middlewares.AuthMiddleware(1, 2), associationController.RemoveServicesFromHotel)
	v1.POST("/guest/:id/services", middlewares.AuthMiddleware(1, 2), associationController.AddServicesToGuest)
	v1.DELETE("/guest/:id/services", middlewares.AuthMiddleware(1, 2), associationController.RemoveServicesFromGuest)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": "No file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(400, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "hotels"})
		if err != nil {
			c.JSON(500, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})
}
