package routes

import (
    "github.com/Ramo-11/united-masjid-help/controllers"
    "github.com/Ramo-11/united-masjid-help/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public API
    api := r.Group("/api")
    {
        api.GET("/pantries", controllers.GetPantries)
        api.GET("/pantry-addresses", controllers.GetPantryAddresses)

        api.POST("/donations", controllers.RecordDonation)
        api.GET("/donations", controllers.GetDonationHistory)

        api.GET("/slots", controllers.GetSlots)
        api.POST("/volunteers", controllers.RegisterVolunteer)

        api.GET("/food-goals/:pantry", controllers.GetFoodGoals)
        api.POST("/item-donation-volunteer", controllers.CreateItemPledge)

        api.GET("/media", controllers.GetMedia)
        api.GET("/external-links", controllers.GetExternalLinks)

        api.POST("/admin/verify", controllers.VerifyAdmin)
    }

    // Live progress feed
    r.GET("/ws/progress/:pantry", controllers.ProgressWS)

    // Admin API
    admin := r.Group("/api/admin")
    admin.Use(middlewares.AdminAuthMiddleware())
    {
        admin.GET("/check", controllers.CheckAdmin)
        admin.POST("/logout", controllers.Logout)

        admin.POST("/goal/:pantry", controllers.UpdateGoal)
        admin.DELETE("/donations/:pantry", controllers.ClearDonations)

        admin.GET("/slots", controllers.GetSlotsAdmin)
        admin.POST("/slots", controllers.AddSlot)
        admin.PUT("/slots/:id", controllers.UpdateSlot)
        admin.DELETE("/slots/:id", controllers.DeleteSlot)
        admin.POST("/slots/:id/complete", controllers.CompleteSlot)

        admin.GET("/volunteers", controllers.GetVolunteers)
        admin.DELETE("/volunteers/:slotId", controllers.ClearVolunteers)

        admin.POST("/food-goals/:pantry", controllers.SetFoodGoal)
        admin.DELETE("/food-goals/:pantry/:category", controllers.DeleteFoodGoal)
        admin.POST("/food-achievements", controllers.RecordFoodAchievement)
        admin.POST("/food-goals/:pantry/:category/complete", controllers.CompleteFoodGoal)

        admin.GET("/pledges", controllers.GetItemPledges)
        admin.POST("/pledges/:id/complete", controllers.CompleteItemPledge)

        admin.POST("/media", controllers.UploadMedia)
        admin.DELETE("/media/:groupId", controllers.DeleteMediaGroup)
        admin.POST("/external-links", controllers.AddExternalLink)
        admin.DELETE("/external-links/:id", controllers.DeleteExternalLink)
    }

    return r
}
