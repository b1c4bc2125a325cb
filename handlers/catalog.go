package handlers

import (
	"net/http"

	"homeserve/models"
	"homeserve/services/booking"

	"github.com/gin-gonic/gin"
)

// GetCategoriesHandler lists the service categories on offer.
func GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories()})
}

// GetCategoryFieldsHandler returns the spec field schema a client should
// render for a category's details step. Unknown categories yield an
// empty list.
func GetCategoryFieldsHandler(c *gin.Context) {
	category := c.Param("category")
	fields := booking.SpecFields(category)
	if fields == nil {
		fields = []models.FieldDef{}
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "fields": fields})
}

// GetTimeSlotsHandler returns the bookable hourly start slots.
func GetTimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": models.HourlySlots})
}
