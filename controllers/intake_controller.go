package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/suyogshejal2004/waterreminder/services"

	"github.com/gin-gonic/gin"
)

type IntakeController struct {
	Intake *services.IntakeService
}

func NewIntakeController(intake *services.IntakeService) *IntakeController {
	return &IntakeController{Intake: intake}
}

type amountReq struct {
	AmountMl float64 `json:"amount_ml" binding:"required"`
}

func writeIntakeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save your progress, please retry"})
	}
}

// POST /water
func (ic *IntakeController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ic.Intake.AddEntry(uid, req.AmountMl)
	if err != nil {
		writeIntakeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// PUT /water/:id
func (ic *IntakeController) Edit(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ic.Intake.EditEntry(uid, uint(id), req.AmountMl)
	if err != nil {
		writeIntakeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /water/:id
func (ic *IntakeController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := ic.Intake.DeleteEntry(uid, uint(id)); err != nil {
		writeIntakeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /water/undo
func (ic *IntakeController) Undo(c *gin.Context) {
	uid := c.GetUint("userID")

	undone, entry, err := ic.Intake.UndoLast(uid)
	if err != nil {
		writeIntakeErr(c, err)
		return
	}
	if !undone {
		c.JSON(http.StatusOK, gin.H{"undone": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"undone": true, "entry": entry})
}
