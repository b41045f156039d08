package inventory

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"honorsinventory/internal/domain"
	"honorsinventory/internal/pkg/response"
	"honorsinventory/internal/pkg/validator"
)

type Handler struct {
	equipment *Service
	locations *LocationService
	now       func() time.Time

	equipmentPath string
}

func NewHandler(equipment *Service, locations *LocationService) *Handler {
	return &Handler{
		equipment: equipment,
		locations: locations,
		now:       time.Now,
	}
}

// List returns every piece of equipment with its room.
// @Summary		List equipment
// @Tags		Equipment
// @Success		200	{array}		domain.EquipmentView
// @Failure		500	{object}	response.ErrorBody
// @Router		/equipment [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.equipment.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// @Summary		Get equipment
// @Tags		Equipment
// @Param		id	path	int	true	"Equipment ID"
// @Success		200	{object}	domain.EquipmentView
// @Failure		400	{object}	response.ErrorBody
// @Failure		404	{object}	response.ErrorBody
// @Router		/equipment/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.equipment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create adds equipment. Without locationId it is placed in the warehouse.
// @Summary		Create equipment
// @Tags		Equipment
// @Param		request	body	domain.CreateEquipmentRequest	true	"New equipment"
// @Success		201	{object}	domain.EquipmentView
// @Failure		400	{object}	response.ErrorBody
// @Failure		404	{object}	response.ErrorBody	"Location does not exist"
// @Router		/equipment [POST]
func (h *Handler) Create(c *gin.Context) {
	var req domain.CreateEquipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.equipment.Create(c.Request.Context(), req.Model, req.EquipmentType, req.LocationID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", h.equipmentPath+"/"+strconv.FormatInt(item.ID, 10))
	response.JSON(c, http.StatusCreated, item)
}

// @Summary		Update equipment model and type
// @Tags		Equipment
// @Param		id		path	int								true	"Equipment ID"
// @Param		request	body	domain.UpdateEquipmentRequest	true	"Fields"
// @Success		200	{object}	domain.EquipmentView
// @Failure		400	{object}	response.ErrorBody
// @Failure		404	{object}	response.ErrorBody
// @Router		/equipment/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.UpdateEquipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.equipment.Update(c.Request.Context(), id, req.Model, req.EquipmentType)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// @Summary		Delete equipment
// @Tags		Equipment
// @Param		id	path	int	true	"Equipment ID"
// @Success		204
// @Failure		404	{object}	response.ErrorBody
// @Router		/equipment/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.equipment.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !deleted {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Equipment not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// Transfer moves equipment to another room.
// @Summary		Transfer equipment
// @Tags		Equipment
// @Param		id		path	int								true	"Equipment ID"
// @Param		request	body	domain.TransferEquipmentRequest	true	"Target location"
// @Success		200	{object}	domain.EquipmentView
// @Failure		400	{object}	response.ErrorBody
// @Failure		404	{object}	response.ErrorBody	"Equipment or location does not exist"
// @Router		/equipment/{id}/transfer [PUT]
func (h *Handler) Transfer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.TransferEquipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, err := h.equipment.Transfer(c.Request.Context(), id, *req.NewLocationID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// @Summary		List locations
// @Tags		Locations
// @Success		200	{array}	domain.Location
// @Router		/locations [GET]
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.locations.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, locations)
}

func (h *Handler) ListEquipmentTypes(c *gin.Context) {
	response.JSON(c, http.StatusOK, domain.EquipmentTypeSuggestions)
}

// DownloadReport streams the inventory and summary counts as a workbook.
func (h *Handler) DownloadReport(c *gin.Context) {
	items, err := h.equipment.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	now := h.now()
	f, err := BuildReport(items, now)
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+reportFileName(now))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", verr.Fields)
	case errors.Is(err, ErrEquipmentNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Equipment not found")
	case errors.Is(err, ErrLocationNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Location not found")
	case errors.Is(err, ErrNoWarehouse):
		response.Error(c, http.StatusBadRequest, response.CodeNoWarehouse, "No warehouse location exists to place new equipment in")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidID, "Invalid equipment ID")
		return 0, false
	}
	return id, true
}

func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidJSON, "Request body is not valid JSON")
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Validation failed", errs)
		return false
	}
	return true
}
