// Standalone upstream stub for local development: serves the demo room and
// booking data on the two endpoints the board polls.
package main

import (
	"log"
	"net/http"
	"os"

	"roomboard/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var rooms = []models.Room{
	{Name: "Ayrton Senna", Color: "#d97706"},
	{Name: "Santos Dumont", Color: "#7e57c2"},
	{Name: "Alan Turing", Color: "#2b6cb0"},
	{Name: "Dorothy Vaughan", Color: "#c0841a"},
	{Name: "Ada Lovelace", Color: "#2f9e74"},
	{Name: "John Von Neumann", Color: "#b23a76"},
}

var bookings = []models.Booking{
	{Room: "Dorothy Vaughan", Start: "08:30", End: "09:30"},
	{Room: "John Von Neumann", Start: "08:30", End: "09:30"},
	{Room: "Dorothy Vaughan", Start: "09:30", End: "10:30"},
	{Room: "John Von Neumann", Start: "09:30", End: "10:30"},
	{Room: "Ayrton Senna", Start: "14:00", End: "17:00"},
	{Room: "Alan Turing", Start: "10:00", End: "12:00"},
	{Room: "Santos Dumont", Start: "11:00", End: "12:00"},
	{Room: "Ada Lovelace", Start: "15:00", End: "16:00"},
	{Room: "Ayrton Senna", Start: "08:00", End: "09:00"},
	{Room: "Alan Turing", Start: "09:00", End: "10:00"},
	{Room: "Santos Dumont", Start: "10:00", End: "11:00"},
	{Room: "Ada Lovelace", Start: "11:00", End: "12:00"},
	{Room: "John Von Neumann", Start: "13:00", End: "14:00"},
	{Room: "Dorothy Vaughan", Start: "14:00", End: "15:00"},
	{Room: "Alan Turing", Start: "16:00", End: "17:00"},
	{Room: "Santos Dumont", Start: "17:00", End: "18:00"},
	{Room: "Ada Lovelace", Start: "08:30", End: "09:30"},
	{Room: "John Von Neumann", Start: "12:00", End: "13:00"},
	{Room: "Dorothy Vaughan", Start: "17:00", End: "18:00"},
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, rooms)
	})
	r.GET("/booking", func(c *gin.Context) {
		c.JSON(http.StatusOK, bookings)
	})

	log.Printf("Dummy room API running at http://localhost:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatalf("dummy API server failed: %v", err)
	}
}
