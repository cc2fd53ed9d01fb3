package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickmed/middleware"
	"quickmed/models"
	"quickmed/services/account"
	"quickmed/utils"
)

// AccountHandler serves users, doctors, roles and wallets.
type AccountHandler struct {
	Svc account.Service
}

// NewAccountHandler wires the account handler.
func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

// UpsertUser writes the account document and returns a bearer token
// (PUT /user/:email) — the portal's login path.
func (h *AccountHandler) UpsertUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid user payload"))
		return
	}

	token, err := h.Svc.UpsertUser(c.Request.Context(), c.Param("email"), user)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "token": token})
}

// ListUsers returns every account (GET /users).
func (h *AccountHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByEmail returns one account (GET /users/:email).
func (h *AccountHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.Svc.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByID returns one account by object id (GET /users/id/:id).
func (h *AccountHandler) GetUserByID(c *gin.Context) {
	user, err := h.Svc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// IsAdmin probes the admin capability (GET /users/admin/:email).
func (h *AccountHandler) IsAdmin(c *gin.Context) {
	ok, err := h.Svc.HasRole(c.Request.Context(), c.Param("email"), models.RoleAdmin)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": ok})
}

// IsDoctor probes the doctor capability (GET /users/doctor/:email).
func (h *AccountHandler) IsDoctor(c *gin.Context) {
	ok, err := h.Svc.HasRole(c.Request.Context(), c.Param("email"), models.RoleDoctor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isDoctor": ok})
}

// PromoteAdmin grants the admin capability (PUT /users/admin/:email, admin).
func (h *AccountHandler) PromoteAdmin(c *gin.Context) {
	if err := h.Svc.PromoteAdmin(c.Request.Context(), c.Param("email")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteUser removes an account (DELETE /users/:email, admin).
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("email")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetWallet returns the wallet data of an account
// (GET /users/wallet/:email, doctor).
func (h *AccountHandler) GetWallet(c *gin.Context) {
	data, err := h.Svc.GetWallet(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// PutWallet attaches wallet data to an account (PUT /users/wallet/:email).
func (h *AccountHandler) PutWallet(c *gin.Context) {
	var data models.WalletData
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid wallet payload"))
		return
	}

	if err := h.Svc.SetWallet(c.Request.Context(), c.Param("email"), data); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// ApplyDoctor records a doctor application (PUT /doctor/:email).
func (h *AccountHandler) ApplyDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid doctor payload"))
		return
	}

	if err := h.Svc.ApplyDoctor(c.Request.Context(), c.Param("email"), doctor); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// ApproveDoctor grants the doctor capability (PUT /doctor/admin/:email, admin).
func (h *AccountHandler) ApproveDoctor(c *gin.Context) {
	if err := h.Svc.ApproveDoctor(c.Request.Context(), c.Param("email")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteDoctor removes a doctor profile (DELETE /doctor/:email, admin).
func (h *AccountHandler) DeleteDoctor(c *gin.Context) {
	if err := h.Svc.DeleteDoctor(c.Request.Context(), c.Param("email")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// ListDoctors returns every doctor profile (GET /doctors).
func (h *AccountHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Svc.ListDoctors(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DoctorInfo returns the caller's own doctor profile
// (GET /doctors_info?email=, doctor; email must match the token subject).
func (h *AccountHandler) DoctorInfo(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		utils.RespondError(c, utils.Errorf(utils.KindForbidden, "forbidden access"))
		return
	}

	doctor, err := h.Svc.GetDoctorByEmail(c.Request.Context(), email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	info := []models.Doctor{}
	if doctor != nil {
		info = append(info, *doctor)
	}
	c.JSON(http.StatusOK, info)
}
