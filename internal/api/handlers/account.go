package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for accounts, sessions and companies
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Register handles POST /accounts/register
// @Summary Register a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body service.RegisterRequest true "Registration data"
// @Success 201 {object} models.User "Account created, verification pending"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /accounts/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type verifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// Verify handles POST /accounts/verify
// @Summary Verify an account email
// @Tags accounts
// @Accept json
// @Produce json
// @Param token body verifyRequest true "Verification token"
// @Success 200 {object} models.User "Account verified"
// @Failure 401 {object} ErrorResponse "Token expired or already used"
// @Router /accounts/verify [post]
func (h *AccountHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.VerifyEmail(req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type resetRequestBody struct {
	Email string `json:"email" binding:"required"`
}

// RequestPasswordReset handles POST /accounts/password-reset/request
// @Summary Request a password reset token
// @Tags accounts
// @Accept json
// @Produce json
// @Param email body resetRequestBody true "Account email"
// @Success 202 {object} map[string]string "Reset token issued if the account exists"
// @Router /accounts/password-reset/request [post]
func (h *AccountHandler) RequestPasswordReset(c *gin.Context) {
	var req resetRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.RequestPasswordReset(req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "reset token issued if the account exists"})
}

type resetBody struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPassword handles POST /accounts/password-reset/confirm
// @Summary Reset a password with a live token
// @Tags accounts
// @Accept json
// @Produce json
// @Param reset body resetBody true "Token and new password"
// @Success 200 {object} map[string]string "Password replaced"
// @Failure 401 {object} ErrorResponse "Token expired or already used"
// @Router /accounts/password-reset/confirm [post]
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req resetBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.ResetPassword(req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

type loginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login handles POST /accounts/login
// @Summary Authenticate and receive a JWT
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentials body loginBody true "Email and password"
// @Success 200 {object} loginResponse "Signed token and account"
// @Failure 401 {object} ErrorResponse "Invalid credentials or unverified account"
// @Router /accounts/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.accountService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// GetMe handles GET /accounts/me
// @Summary Get the caller's account
// @Tags accounts
// @Produce json
// @Success 200 {object} models.User
// @Security BearerAuth
// @Router /accounts/me [get]
func (h *AccountHandler) GetMe(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	user, err := h.accountService.GetMe(claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PATCH /accounts/me
// @Summary Update the caller's profile
// @Description Applies first name, last name, image and theme atomically; omitted fields keep their value
// @Tags accounts
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /accounts/me [patch]
func (h *AccountHandler) UpdateMe(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.UpdateProfile(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type setRoleBody struct {
	Role models.UserRole `json:"role" binding:"required"`
}

// SetRole handles PUT /users/:id/role
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param role body setRoleBody true "New role"
// @Success 200 {object} models.User
// @Failure 403 {object} ErrorResponse "Only super admins grant super_admin"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *AccountHandler) SetRole(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req setRoleBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.SetRole(claims, id, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users
// @Summary List the company's users
// @Tags users
// @Produce json
// @Param company_id query string false "Company ID (super admin only)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} listResponse
// @Security BearerAuth
// @Router /users [get]
func (h *AccountHandler) ListUsers(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	companyID, ok := queryID(c, "company_id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	users, total, err := h.accountService.ListUsers(claims, companyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: users, Total: total, Page: page, PageSize: pageSize})
}

// CreateCompany handles POST /companies
// @Summary Register a new tenant
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} models.Company
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Security BearerAuth
// @Router /companies [post]
func (h *AccountHandler) CreateCompany(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.accountService.CreateCompany(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /companies/:id
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} models.Company
// @Failure 404 {object} ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *AccountHandler) GetCompany(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.accountService.GetCompany(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// ListCompanies handles GET /companies
// @Summary List all tenants
// @Tags companies
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} listResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *AccountHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pageParams(c)
	companies, total, err := h.accountService.ListCompanies(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: companies, Total: total, Page: page, PageSize: pageSize})
}

type linkCompanyBody struct {
	Email       string `json:"email" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
}

// LinkUserCompany handles POST /users/link-company
// @Summary Attach a user to a company by name
// @Description Creates the company when it does not exist yet. Super admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param link body linkCompanyBody true "User email and company name"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/link-company [post]
func (h *AccountHandler) LinkUserCompany(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req linkCompanyBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.LinkUserCompany(claims, req.Email, req.CompanyName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
