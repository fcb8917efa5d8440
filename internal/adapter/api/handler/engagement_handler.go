package handler

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/response"
)

type EngagementHandler struct {
	engagementUseCase *usecase.EngagementUseCase
}

func NewEngagementHandler(engagementUseCase *usecase.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
	}
}

type floorRequest struct {
	Number  int    `json:"number"`
	Details string `json:"details"`
}

type createConstructionRequest struct {
	CompanyID              string         `json:"company_id" validate:"required"`
	ProjectName            string         `json:"project_name" validate:"required"`
	CustomerName           string         `json:"customer_name"`
	CustomerEmail          string         `json:"customer_email"`
	CustomerPhone          string         `json:"customer_phone"`
	ProjectAddress         string         `json:"project_address" validate:"required"`
	ProjectLocationPincode string         `json:"project_location_pincode"`
	TotalArea              float64        `json:"total_area" validate:"required,gt=0"`
	BuildingType           string         `json:"building_type"`
	EstimatedBudget        float64        `json:"estimated_budget" validate:"gte=0"`
	ProjectTimeline        int            `json:"project_timeline" validate:"gte=0"`
	TotalFloors            int            `json:"total_floors"`
	Floors                 []floorRequest `json:"floors"`
	SpecialRequirements    string         `json:"special_requirements"`
	AccessibilityNeeds     string         `json:"accessibility_needs"`
	EnergyEfficiency       string         `json:"energy_efficiency"`
	SiteFilepaths          []string       `json:"site_filepaths"`
}

func (h *EngagementHandler) CreateConstructionProject(c echo.Context) error {
	var req createConstructionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customerID := c.Get("uid").(string)

	floors := make([]entity.Floor, len(req.Floors))
	for i, f := range req.Floors {
		floors[i] = entity.Floor{Number: f.Number, Details: f.Details}
	}

	project := &entity.ConstructionProject{
		CustomerID:             customerID,
		CompanyID:              req.CompanyID,
		ProjectName:            req.ProjectName,
		CustomerName:           req.CustomerName,
		CustomerEmail:          req.CustomerEmail,
		CustomerPhone:          req.CustomerPhone,
		ProjectAddress:         req.ProjectAddress,
		ProjectLocationPincode: req.ProjectLocationPincode,
		TotalArea:              req.TotalArea,
		BuildingType:           req.BuildingType,
		EstimatedBudget:        req.EstimatedBudget,
		ProjectTimeline:        req.ProjectTimeline,
		TotalFloors:            req.TotalFloors,
		Floors:                 floors,
		SpecialRequirements:    req.SpecialRequirements,
		AccessibilityNeeds:     req.AccessibilityNeeds,
		EnergyEfficiency:       req.EnergyEfficiency,
		SiteFilepaths:          req.SiteFilepaths,
	}

	result, err := h.engagementUseCase.Create(c.Request().Context(), project)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

type createArchitectHiringRequest struct {
	Worker       string  `json:"worker" validate:"required"`
	ProjectName  string  `json:"project_name" validate:"required"`
	Requirements string  `json:"requirements"`
	Budget       float64 `json:"budget" validate:"gte=0"`
	Timeline     string  `json:"timeline"`
}

func (h *EngagementHandler) CreateArchitectHiring(c echo.Context) error {
	var req createArchitectHiringRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customerID := c.Get("uid").(string)

	hiring := &entity.ArchitectHiring{
		Customer:     customerID,
		Worker:       req.Worker,
		ProjectName:  req.ProjectName,
		Requirements: req.Requirements,
		Budget:       req.Budget,
		Timeline:     req.Timeline,
	}

	result, err := h.engagementUseCase.Create(c.Request().Context(), hiring)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

type createDesignRequestRequest struct {
	WorkerID   string  `json:"worker_id" validate:"required"`
	RoomType   string  `json:"room_type" validate:"required"`
	RoomLength float64 `json:"room_length" validate:"required,gt=0"`
	RoomWidth  float64 `json:"room_width" validate:"required,gt=0"`
	StylePrefs string  `json:"style_prefs"`
}

func (h *EngagementHandler) CreateDesignRequest(c echo.Context) error {
	var req createDesignRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customerID := c.Get("uid").(string)

	design := &entity.DesignRequest{
		CustomerID: customerID,
		WorkerID:   req.WorkerID,
		RoomType:   req.RoomType,
		RoomSize:   entity.RoomSize{Length: req.RoomLength, Width: req.RoomWidth},
		StylePrefs: req.StylePrefs,
	}

	result, err := h.engagementUseCase.Create(c.Request().Context(), design)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// UpdateConstructionStatus handles the company's accept/reject decision on a
// construction project. A project that exists but is not assigned to the
// caller reads as not found, so ownership cannot be probed.
func (h *EngagementHandler) UpdateConstructionStatus(c echo.Context) error {
	companyID := c.Get("uid").(string)
	projectID := c.Param("projectId")
	statusLiteral := c.Param("status")

	result, err := h.engagementUseCase.UpdateStatus(c.Request().Context(), entity.VariantConstruction, projectID, companyID, statusLiteral)
	if err != nil {
		if errors.Is(err, "FORBIDDEN") {
			return response.Error(c, errors.NotFound("Project", nil))
		}
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type jobStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=architect interior"`
}

// UpdateJobStatus handles a worker's accept/reject decision on an architect
// hiring or interior design request.
func (h *EngagementHandler) UpdateJobStatus(c echo.Context) error {
	var req jobStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	workerID := c.Get("uid").(string)
	variant, _ := entity.ParseVariant(req.Type)

	result, err := h.engagementUseCase.UpdateStatus(c.Request().Context(), variant, c.Param("id"), workerID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type submitProposalRequest struct {
	ProjectID   string  `json:"project_id" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
}

func (h *EngagementHandler) SubmitProposal(c echo.Context) error {
	var req submitProposalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)

	result, err := h.engagementUseCase.SubmitProposal(c.Request().Context(), entity.VariantConstruction, req.ProjectID, companyID, req.Price, req.Description)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type projectUpdateRequest struct {
	Text  string `json:"text" validate:"required"`
	Image string `json:"image"`
}

func (h *EngagementHandler) PostProjectUpdate(c echo.Context) error {
	var req projectUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)

	result, err := h.engagementUseCase.PostProjectUpdate(c.Request().Context(), entity.VariantConstruction, c.Param("projectId"), companyID, req.Text, req.Image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type jobUpdateRequest struct {
	Type  string `json:"type" validate:"required,oneof=architect interior"`
	Text  string `json:"text" validate:"required"`
	Image string `json:"image"`
}

// PostJobUpdate is the worker-side counterpart of PostProjectUpdate for
// architect and interior engagements.
func (h *EngagementHandler) PostJobUpdate(c echo.Context) error {
	var req jobUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	workerID := c.Get("uid").(string)

	result, err := h.engagementUseCase.PostProjectUpdate(c.Request().Context(), entity.EngagementVariant(req.Type), c.Param("id"), workerID, req.Text, req.Image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *EngagementHandler) CompleteProject(c echo.Context) error {
	companyID := c.Get("uid").(string)

	result, err := h.engagementUseCase.MarkCompleted(c.Request().Context(), entity.VariantConstruction, c.Param("projectId"), companyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// ListJobs returns the pending job offers for the authenticated worker,
// drawn from the collection matching the worker's discipline.
func (h *EngagementHandler) ListJobs(c echo.Context) error {
	workerID := c.Get("uid").(string)

	jobs, err := h.engagementUseCase.ListJobsForWorker(c.Request().Context(), workerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, jobs)
}

// ListMyEngagements returns the engagements the caller initiated for the
// variant given in the type query parameter.
func (h *EngagementHandler) ListMyEngagements(c echo.Context) error {
	userID := c.Get("uid").(string)

	variant, ok := entity.ParseVariant(c.QueryParam("type"))
	if !ok {
		return response.Error(c, errors.BadRequest("Unknown engagement type", nil))
	}

	results, err := h.engagementUseCase.ListForInitiator(c.Request().Context(), variant, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

// ListAssignedEngagements returns the engagements assigned to the caller for
// the given variant, optionally narrowed by the status query parameter
// (canonical spelling).
func (h *EngagementHandler) ListAssignedEngagements(c echo.Context) error {
	userID := c.Get("uid").(string)

	variant, ok := entity.ParseVariant(c.QueryParam("type"))
	if !ok {
		return response.Error(c, errors.BadRequest("Unknown engagement type", nil))
	}

	var status *entity.EngagementStatus
	if lit := c.QueryParam("status"); lit != "" {
		s, ok := entity.ParseStatusLiteral(variant, lit)
		if !ok {
			return response.Error(c, errors.BadRequest("Invalid status provided", nil))
		}
		status = &s
	}

	results, err := h.engagementUseCase.ListForAssignee(c.Request().Context(), variant, userID, status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

func (h *EngagementHandler) GetEngagement(c echo.Context) error {
	variant, ok := entity.ParseVariant(c.Param("type"))
	if !ok {
		return response.Error(c, errors.BadRequest("Unknown engagement type", nil))
	}

	result, err := h.engagementUseCase.GetByID(c.Request().Context(), variant, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
