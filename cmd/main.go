package main

import (
    "github.com/suyogshejal2004/waterreminder/config"
    "github.com/suyogshejal2004/waterreminder/routes"
    "github.com/suyogshejal2004/waterreminder/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    r := routes.SetupRouter()
    r.Run(":8080")
}
