package main

import (
    "log"
    "os"

    "github.com/Ramo-11/united-masjid-help/config"
    "github.com/Ramo-11/united-masjid-help/routes"
    "github.com/Ramo-11/united-masjid-help/services"
    "github.com/Ramo-11/united-masjid-help/utils"
)

func main() {
    config.InitDB()
    services.InitAdminAuth()
    utils.InitS3()
    utils.InitMailer()

    r := routes.SetupRouter()

    port := os.Getenv("PORT")
    if port == "" {
        port = "3000"
    }
    if err := r.Run(":" + port); err != nil {
        log.Fatalf("could not run server: %v", err)
    }
}
