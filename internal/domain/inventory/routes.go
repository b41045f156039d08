package inventory

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	equipment := r.Group("/equipment")
	h.equipmentPath = equipment.BasePath()
	{
		equipment.GET("", h.List)
		equipment.POST("", h.Create)
		equipment.GET("/:id", h.Get)
		equipment.PUT("/:id", h.Update)
		equipment.DELETE("/:id", h.Delete)
		equipment.PUT("/:id/transfer", h.Transfer)
	}

	r.GET("/locations", h.ListLocations)
	r.GET("/equipment-types", h.ListEquipmentTypes)
	r.GET("/reports/equipment.xlsx", h.DownloadReport)
}
